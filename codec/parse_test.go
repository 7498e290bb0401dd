package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAuth = "ate2bd319014b24e0a8aca9f00aea4c0d0"

func TestParseUplinkPush(t *testing.T) {
	frame := "PUSH|!1|" + testAuth + "|sensor-01|[temp:=23.5#C@1700000000;humidity:=55]"
	f, perr := ParseUplink(frame)
	require.Nil(t, perr)

	assert.Equal(t, Push, f.Method)
	assert.True(t, f.SeqOK)
	assert.Equal(t, uint32(1), f.Seq)
	assert.Equal(t, testAuth, f.Auth)
	assert.Equal(t, "sensor-01", f.Serial)
	require.NotNil(t, f.PushBody)
	require.Equal(t, PushStructured, f.PushBody.Kind)
	vars := f.PushBody.Structured.Variables
	require.Len(t, vars, 2)
	assert.Equal(t, "temp", vars[0].Name)
	assert.Equal(t, OpNumber, vars[0].Operator)
	assert.Equal(t, "23.5", vars[0].Value.Number)
	assert.True(t, vars[0].UnitOK)
	assert.Equal(t, "C", vars[0].Unit)
	assert.True(t, vars[0].TimestampOK)
	assert.Equal(t, "1700000000", vars[0].Timestamp)
	assert.Equal(t, "humidity", vars[1].Name)
}

func TestParseUplinkPing(t *testing.T) {
	frame := "PING|!2|" + testAuth + "|sensor-01"
	f, perr := ParseUplink(frame)
	require.Nil(t, perr)
	assert.Equal(t, Ping, f.Method)
	assert.Nil(t, f.PushBody)
	assert.Nil(t, f.PullBody)
}

func TestParseUplinkPull(t *testing.T) {
	frame := "PULL|!3|" + testAuth + "|sensor-01|[temp;humidity]"
	f, perr := ParseUplink(frame)
	require.Nil(t, perr)
	require.NotNil(t, f.PullBody)
	assert.Equal(t, []string{"temp", "humidity"}, f.PullBody.Variables)
}

func TestParseUplinkTrailingNewlineStripped(t *testing.T) {
	frame := "PING|!1|" + testAuth + "|sensor-01\n"
	f, perr := ParseUplink(frame)
	require.Nil(t, perr)
	assert.Equal(t, "sensor-01", f.Serial)
}

func TestParseUplinkEmptyFrame(t *testing.T) {
	_, perr := ParseUplink("")
	require.NotNil(t, perr)
	assert.Equal(t, ErrEmptyFrame, perr.Kind)
}

func TestParseUplinkNulByte(t *testing.T) {
	_, perr := ParseUplink("PING|!1|" + testAuth + "|a\x00b")
	require.NotNil(t, perr)
	assert.Equal(t, ErrNulByte, perr.Kind)
}

func TestParseUplinkInvalidMethod(t *testing.T) {
	_, perr := ParseUplink("FOO|!1|" + testAuth + "|sensor-01")
	require.NotNil(t, perr)
	assert.Equal(t, ErrInvalidMethod, perr.Kind)
}

func TestParseUplinkInvalidAuth(t *testing.T) {
	_, perr := ParseUplink("PING|!1|bad-token|sensor-01")
	require.NotNil(t, perr)
	assert.Equal(t, ErrInvalidAuth, perr.Kind)
}

func TestParseUplinkMissingBody(t *testing.T) {
	_, perr := ParseUplink("PUSH|!1|" + testAuth + "|sensor-01|")
	require.NotNil(t, perr)
	assert.Equal(t, ErrMissingBody, perr.Kind)
}

func TestParseAckOK(t *testing.T) {
	a, perr := ParseAck("ACK|!1|OK|2")
	require.Nil(t, perr)
	assert.Equal(t, AckOK, a.Status)
	require.NotNil(t, a.Detail)
	assert.Equal(t, DetailCount, a.Detail.Kind)
	assert.Equal(t, uint32(2), a.Detail.Count)
}

func TestParseAckErr(t *testing.T) {
	a, perr := ParseAck("ACK|!1|ERR|auth_failed")
	require.Nil(t, perr)
	assert.Equal(t, AckErr, a.Status)
	require.NotNil(t, a.Detail)
	assert.Equal(t, ErrAuthFailed, a.Detail.ErrorCode)
	assert.Equal(t, "auth_failed", a.Detail.Text)
}

func TestParseAckPong(t *testing.T) {
	a, perr := ParseAck("ACK|!1|PONG")
	require.Nil(t, perr)
	assert.Equal(t, AckPong, a.Status)
}

func TestParseHeadlessPush(t *testing.T) {
	f, perr := ParseHeadless("sensor-01|[temp:=23.5]", false)
	require.Nil(t, perr)
	assert.Equal(t, "sensor-01", f.Serial)
	require.NotNil(t, f.PushBody)
}

func TestParseHeadlessPingLike(t *testing.T) {
	f, perr := ParseHeadless("sensor-01", false)
	require.Nil(t, perr)
	assert.Equal(t, "sensor-01", f.Serial)
	assert.Nil(t, f.PushBody)
}

func TestParseVariableWithMetadata(t *testing.T) {
	var pool []MetaPair
	v, ok := ParseVariable("temp:=23.5{battery=90,rssi=-70}", &pool)
	require.True(t, ok)
	assert.True(t, v.MetaOK)
	require.Len(t, pool, 2)
	assert.Equal(t, "battery", pool[0].Key)
	assert.Equal(t, "90", pool[0].Value)
	assert.Equal(t, "rssi", pool[1].Key)
	assert.Equal(t, "-70", pool[1].Value)
}

func TestParseLocationValue(t *testing.T) {
	var pool []MetaPair
	v, ok := ParseVariable("pos@=37.7749,-122.4194,10", &pool)
	require.True(t, ok)
	assert.Equal(t, OpLocation, v.Operator)
	assert.Equal(t, "37.7749", v.Value.Lat)
	assert.Equal(t, "-122.4194", v.Value.Lng)
	assert.True(t, v.Value.AltOK)
	assert.Equal(t, "10", v.Value.Alt)
}

func TestParseBooleanValue(t *testing.T) {
	var pool []MetaPair
	v, ok := ParseVariable("active?=true", &pool)
	require.True(t, ok)
	assert.Equal(t, OpBoolean, v.Operator)
	assert.True(t, v.Value.Boolean)
}

func TestParseVariableSuffixOrder(t *testing.T) {
	var pool []MetaPair
	v, ok := ParseVariable("temp:=23.5#C@1700000000^group1", &pool)
	require.True(t, ok)
	assert.True(t, v.UnitOK)
	assert.Equal(t, "C", v.Unit)
	assert.True(t, v.TimestampOK)
	assert.Equal(t, "1700000000", v.Timestamp)
	assert.True(t, v.GroupOK)
	assert.Equal(t, "group1", v.Group)
}

func TestParseLocationRejectsUnit(t *testing.T) {
	var pool []MetaPair
	_, ok := ParseVariable("pos@=39.74,-104.99#m", &pool)
	assert.False(t, ok)
}

func TestParsePushBodyHexPassthrough(t *testing.T) {
	body, ok := ParsePushBody(">xdeadbeef")
	require.True(t, ok)
	require.Equal(t, PushPassthrough, body.Kind)
	assert.Equal(t, PassthroughHex, body.Passthrough.Encoding)
	assert.Equal(t, "deadbeef", body.Passthrough.Data)
}

func TestParsePushBodyBase64Passthrough(t *testing.T) {
	body, ok := ParsePushBody(">bZGVhZA==")
	require.True(t, ok)
	require.Equal(t, PushPassthrough, body.Kind)
	assert.Equal(t, PassthroughBase64, body.Passthrough.Encoding)
	assert.Equal(t, "ZGVhZA==", body.Passthrough.Data)
}

func TestParseBodyModifiersOrder(t *testing.T) {
	var pool []MetaPair
	b, bracketPos, ok := ParseBodyModifiers("@1700000000^group1{battery=90,rssi=-70}[temp:=1]", &pool)
	require.True(t, ok)
	assert.True(t, b.TimestampOK)
	assert.Equal(t, "1700000000", b.Timestamp)
	assert.True(t, b.GroupOK)
	assert.Equal(t, "group1", b.Group)
	assert.True(t, b.BodyMetaOK)
	require.Len(t, pool, 2)
	assert.Equal(t, "battery", pool[0].Key)
	assert.Equal(t, "rssi", pool[1].Key)
	assert.Equal(t, byte('['), "@1700000000^group1{battery=90,rssi=-70}[temp:=1]"[bracketPos])
}

func TestParseAckOKVariablesDetail(t *testing.T) {
	a, perr := ParseAck("ACK|!1|OK|[temp:=23.5]")
	require.Nil(t, perr)
	require.NotNil(t, a.Detail)
	assert.Equal(t, DetailVariables, a.Detail.Kind)
	assert.Equal(t, "[temp:=23.5]", a.Detail.Variables)
}

func TestParseAckOKNoDetail(t *testing.T) {
	a, perr := ParseAck("ACK|!1|OK")
	require.Nil(t, perr)
	assert.Nil(t, a.Detail)
}
