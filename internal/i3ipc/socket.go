package i3ipc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrSocketNotFound means no IPC socket could be discovered.
var ErrSocketNotFound = errors.New("i3 IPC socket not found")

// socketEnvVars lists the variables i3 and sway export to their children.
var socketEnvVars = []string{"I3SOCK", "SWAYSOCK"}

// socketPathCommands are asked for the socket path when no variable is set.
var socketPathCommands = []string{"i3", "sway"}

// SocketPath resolves the IPC socket: explicit value, I3SOCK, SWAYSOCK, then
// `i3 --get-socketpath` and `sway --get-socketpath`.
func SocketPath(ctx context.Context, explicit string) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit, nil
	}

	for _, name := range socketEnvVars {
		if value := strings.TrimSpace(os.Getenv(name)); value != "" {
			return value, nil
		}
	}

	var attempts []string
	for _, bin := range socketPathCommands {
		path, err := askSocketPath(ctx, bin)
		if err == nil {
			return path, nil
		}
		attempts = append(attempts, err.Error())
	}

	return "", fmt.Errorf("%w (I3SOCK and SWAYSOCK unset; %s)", ErrSocketNotFound, strings.Join(attempts, "; "))
}

func askSocketPath(ctx context.Context, bin string) (string, error) {
	cmd := exec.CommandContext(ctx, bin, "--get-socketpath")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s --get-socketpath failed: %w", bin, err)
	}
	path := strings.TrimSpace(string(out))
	if path == "" {
		return "", fmt.Errorf("%s --get-socketpath returned nothing", bin)
	}
	return path, nil
}
