package msgctx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReplyContextDeliversSingleResponse(t *testing.T) {
	ctx := NewReplyContext[string]()
	ctx.Reply("pong")

	select {
	case got := <-ctx.Response():
		assert.Equal(t, "pong", got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for reply")
	}
}

func TestReplyContextPanicsOnSecondReply(t *testing.T) {
	ctx := NewReplyContext[int]()
	ctx.Reply(1)
	assert.Panics(t, func() { ctx.Reply(2) })
}

type recordingListener struct {
	sent     []string
	requests []string
}

func (l *recordingListener) OnSend(msg string) {
	l.sent = append(l.sent, msg)
}

func (l *recordingListener) OnRequest(msg string, ctx *ReplyContext[string]) {
	l.requests = append(l.requests, msg)
	ctx.Reply("ack:" + msg)
}

func TestListenerContractViaFake(t *testing.T) {
	var l Listener[string] = &recordingListener{}
	l.OnSend("hello")

	ctx := NewReplyContext[string]()
	l.OnRequest("ping", ctx)

	require.Len(t, l.(*recordingListener).sent, 1)
	assert.Equal(t, "hello", l.(*recordingListener).sent[0])

	select {
	case got := <-ctx.Response():
		assert.Equal(t, "ack:ping", got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for reply")
	}
}

func TestListenerContractViaMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockListener[string](ctrl)

	mock.EXPECT().OnSend("hello")
	var l Listener[string] = mock
	l.OnSend("hello")
}
