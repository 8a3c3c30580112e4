package commlink

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_InvalidKind(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()

	_, err := New(Kind("broadcast"), a, make([]byte, 4))
	require.ErrorIs(t, err, ErrInvalidKind)
}

func TestPersistent_SendReceive(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()

	payload := []byte("ping")
	sender, err := New(KindSend, a, payload)
	require.NoError(t, err)
	receiver, err := New(KindReceive, b, make([]byte, len(payload)))
	require.NoError(t, err)

	require.NoError(t, sender.Start())
	require.NoError(t, receiver.Start())
	require.NoError(t, sender.Wait())
	require.NoError(t, receiver.Wait())
	require.Equal(t, payload, receiver.Buffer())
}

func TestPersistent_Reusable(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()

	buf := []byte{0}
	sender, err := New(KindSend, a, buf)
	require.NoError(t, err)
	receiver, err := New(KindReceive, b, make([]byte, 1))
	require.NoError(t, err)

	for i := byte(0); i < 3; i++ {
		buf[0] = i
		require.NoError(t, sender.Start())
		require.NoError(t, receiver.Start())
		require.NoError(t, sender.Wait())
		require.NoError(t, receiver.Wait())
		require.Equal(t, i, receiver.Buffer()[0])
	}
}

func TestPersistent_StartWhileInFlight(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()

	// Nothing reads from the pipe yet, so the send stays in flight.
	sender, err := New(KindSend, a, []byte("stuck"))
	require.NoError(t, err)
	require.NoError(t, sender.Start())
	require.ErrorIs(t, sender.Start(), ErrInFlight)

	go func() {
		tmp := make([]byte, 5)
		_, _ = b.Read(tmp)
	}()
	require.NoError(t, sender.Wait())
}

func TestPersistent_WaitAndTestWithoutStart(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()

	link, err := New(KindReceive, a, make([]byte, 1))
	require.NoError(t, err)

	require.ErrorIs(t, link.Wait(), ErrNotStarted)
	_, err = link.Test()
	require.ErrorIs(t, err, ErrNotStarted)
}

func TestPersistent_TestPolls(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()

	receiver, err := New(KindReceive, b, make([]byte, 2))
	require.NoError(t, err)
	require.NoError(t, receiver.Start())

	ok, err := receiver.Test()
	require.NoError(t, err)
	require.False(t, ok)

	go func() {
		_, _ = a.Write([]byte("ok"))
	}()

	require.Eventually(t, func() bool {
		finished, err := receiver.Test()
		return finished && err == nil
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, []byte("ok"), receiver.Buffer())
}
