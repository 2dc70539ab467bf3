package i3ipc

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.i3wm.org/i3/v4"
)

func treeFrom(t *testing.T, raw string) func() (i3.Tree, error) {
	t.Helper()
	root := decodeTree(t, raw)
	return func() (i3.Tree, error) {
		return i3.Tree{Root: root}, nil
	}
}

// silentWM blocks like a window manager that accepted the request and never answered.
func silentWM[T any](t *testing.T) func() (T, error) {
	t.Helper()
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	return func() (T, error) {
		<-release
		var zero T
		return zero, errors.New("released")
	}
}

func TestSourceFocusedWorkspace(t *testing.T) {
	src := Source{
		SocketPath: "/run/user/1000/i3/ipc-socket.7",
		Timeout:    time.Second,
		getTree:    treeFrom(t, sampleTree),
		getVersion: func() (i3.Version, error) {
			return i3.Version{Major: 4, Minor: 23, HumanReadable: "4.23 (2023-10-29)"}, nil
		},
	}

	name, err := src.FocusedWorkspace(context.Background())
	require.NoError(t, err)
	require.Equal(t, "1: term", name)

	version, err := src.Version(context.Background())
	require.NoError(t, err)
	require.Equal(t, "4.23 (2023-10-29)", version.HumanReadable)
}

func TestSourcePointsI3PackageAtResolvedSocket(t *testing.T) {
	t.Setenv("I3SOCK", "/run/user/1000/i3/ipc-socket.99")

	src := Source{getTree: treeFrom(t, sampleTree)}
	_, err := src.FocusedWorkspace(context.Background())
	require.NoError(t, err)

	path, err := i3.SocketPathHook()
	require.NoError(t, err)
	require.Equal(t, "/run/user/1000/i3/ipc-socket.99", path)
}

func TestSourceSocketNotFoundSkipsRequest(t *testing.T) {
	t.Setenv("I3SOCK", "")
	t.Setenv("SWAYSOCK", "")
	t.Setenv("PATH", t.TempDir())

	called := false
	src := Source{getTree: func() (i3.Tree, error) {
		called = true
		return i3.Tree{}, nil
	}}

	_, err := src.FocusedWorkspace(context.Background())
	require.ErrorIs(t, err, ErrSocketNotFound)
	require.False(t, called)
}

func TestSourceConnectionRefused(t *testing.T) {
	src := Source{SocketPath: filepath.Join(t.TempDir(), "gone.sock"), Timeout: time.Second}
	_, err := src.FocusedWorkspace(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "get tree")
}

func TestSourceRequestError(t *testing.T) {
	src := Source{
		SocketPath: "/tmp/ipc.sock",
		getTree: func() (i3.Tree, error) {
			return i3.Tree{}, errors.New("unexpected EOF")
		},
		getVersion: func() (i3.Version, error) {
			return i3.Version{}, errors.New("broken pipe")
		},
	}

	_, err := src.FocusedWorkspace(context.Background())
	require.EqualError(t, err, "get tree: unexpected EOF")

	_, err = src.Version(context.Background())
	require.EqualError(t, err, "get version: broken pipe")
}

func TestSourceNoFocusedNode(t *testing.T) {
	src := Source{SocketPath: "/tmp/ipc.sock", getTree: treeFrom(t, `{"type":"root","nodes":[]}`)}

	_, err := src.FocusedWorkspace(context.Background())
	require.ErrorIs(t, err, ErrNoFocus)
}

func TestSourceTimeoutBoundsSilentWindowManager(t *testing.T) {
	src := Source{
		SocketPath: "/tmp/ipc.sock",
		Timeout:    100 * time.Millisecond,
		getTree:    silentWM[i3.Tree](t),
		getVersion: silentWM[i3.Version](t),
	}

	start := time.Now()
	_, err := src.FocusedWorkspace(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Contains(t, err.Error(), "no reply from window manager")
	require.Less(t, time.Since(start), 2*time.Second)

	_, err = src.Version(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSourceZeroTimeoutFollowsContextDeadline(t *testing.T) {
	src := Source{SocketPath: "/tmp/ipc.sock", getTree: silentWM[i3.Tree](t)}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := src.FocusedWorkspace(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSourceCancelledContextSkipsRequest(t *testing.T) {
	called := false
	src := Source{SocketPath: "/tmp/ipc.sock", getTree: func() (i3.Tree, error) {
		called = true
		return i3.Tree{}, nil
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.FocusedWorkspace(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called)
}

func decodeTree(t *testing.T, raw string) *Node {
	t.Helper()
	var root Node
	require.NoError(t, json.Unmarshal([]byte(raw), &root))
	return &root
}

const sampleTree = `{
  "id": 1, "name": "root", "type": "root", "focused": false,
  "nodes": [
    {"id": 2, "name": "__i3", "type": "output", "nodes": [
      {"id": 3, "name": "content", "type": "con", "nodes": [
        {"id": 4, "name": "__i3_scratch", "type": "workspace", "nodes": []}
      ]}
    ]},
    {"id": 10, "name": "DP-1", "type": "output", "nodes": [
      {"id": 11, "name": "content", "type": "con", "nodes": [
        {"id": 12, "name": "1: term", "type": "workspace", "nodes": [
          {"id": 13, "name": "alacritty", "type": "con", "focused": true, "nodes": []}
        ]},
        {"id": 14, "name": "2: web", "type": "workspace", "nodes": []}
      ]}
    ]}
  ]
}`
