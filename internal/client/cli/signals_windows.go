//go:build windows

package cli

import "os"

// на windows нет SIGUSR1/SIGUSR2, состояние приложения всегда active
var (
	backgroundSignal os.Signal
	foregroundSignal os.Signal
)

func lifecycleSignals() []os.Signal {
	return nil
}
