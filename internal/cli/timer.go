package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const (
	timerUsage      = "Usage: timer set <MM:SS>|start|pause|reset|status"
	maxClockMinutes = 99
)

// Timer drives the cooking timer.
func (a *App) Timer(ctx context.Context, args []string) error {
	cmd := "status"
	if len(args) > 0 {
		cmd = strings.ToLower(args[0])
	}

	var err error
	switch cmd {
	case "set":
		if len(args) != 2 {
			fmt.Fprintln(a.out, timerUsage)
			return errUsage
		}
		mins, secs, perr := parseClock(args[1])
		if perr != nil {
			fmt.Fprintln(a.out, timerUsage)
			return perr
		}
		err = a.timer.SetTime(mins, secs)
	case "start":
		err = a.timer.Start()
	case "pause":
		a.timer.Pause()
	case "reset":
		a.timer.Reset()
	case "status":
	default:
		fmt.Fprintln(a.out, timerUsage)
		return errUsage
	}

	if err != nil {
		report(a.out, err)
		return err
	}
	fmt.Fprintf(a.out, "Timer %s (%s)\n", a.timer.Display(), a.timer.State())
	return nil
}

// parseClock reads "MM:SS" or a bare number of minutes, up to 99:59.
func parseClock(s string) (minutes, seconds int, err error) {
	m, sec, found := strings.Cut(s, ":")
	if minutes, err = strconv.Atoi(m); err != nil || minutes < 0 || minutes > maxClockMinutes {
		return 0, 0, errUsage
	}
	if !found {
		return minutes, 0, nil
	}
	if seconds, err = strconv.Atoi(sec); err != nil || seconds < 0 || seconds > 59 {
		return 0, 0, errUsage
	}
	return minutes, seconds, nil
}
