// This file is part of Drift.
//
// Drift is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Drift is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Drift.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jetsetilly/drift/console"
	"github.com/jetsetilly/drift/curated"
	"github.com/jetsetilly/drift/environment"
	"github.com/jetsetilly/drift/logger"
	"github.com/jetsetilly/drift/modalflag"
	"github.com/jetsetilly/drift/patch"
	"github.com/jetsetilly/drift/prefs"
	"github.com/jetsetilly/drift/sink"
	"github.com/jetsetilly/drift/statsview"
	"github.com/jetsetilly/drift/synth"
	"github.com/jetsetilly/drift/synth/preferences"
	"github.com/jetsetilly/drift/version"
	"golang.org/x/sync/errgroup"

	// sink adapters register themselves with the sink package
	_ "github.com/jetsetilly/drift/sink/nullsink"
	_ "github.com/jetsetilly/drift/sink/otosink"
	_ "github.com/jetsetilly/drift/sink/pasink"
	_ "github.com/jetsetilly/drift/sink/pulsesink"
	_ "github.com/jetsetilly/drift/sink/sdlsink"
)

const defaultSink = "oto"

// how often the engine statistics are added to the log while playing
const statsInterval = 10 * time.Second

const playHelp = `Keys (when -console is set):
  +/-  amplitude    k  kick    h  hi-hat
  n    normalise    m  mute    s  status
  ?    help         q  quit

Preferences are given with -prefs as a list of key::value pairs:
  -prefs "synth.preset::glide; synth.voices::6; kick.enabled::true"`

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("PLAY", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	switch md.Mode() {
	case "PLAY":
		err = play(ctx, md)
	case "PERFORMANCE":
		err = perform(ctx, md)
	case "VERSION":
		fmt.Println(version.String())
	}

	stop()

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// newEnvironment creates the preferences and applies the command line
// preferences and the patch script to them. The environment is created
// afterwards so that a seed given on the command line is used.
func newEnvironment(ctx context.Context, cl string, script string) (*environment.Environment, error) {
	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	prefs.PushCommandLineStack(cl)
	err = p.ApplyCommandLine()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
	}
	if err != nil {
		return nil, err
	}

	if script != "" {
		if err := patch.Run(ctx, p, script); err != nil {
			return nil, err
		}
	}

	return environment.NewEnvironment(environment.MainSynth, p)
}

func play(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(playHelp)

	sinkName := md.AddString("sink", defaultSink, fmt.Sprintf("audio sink: %s", strings.Join(sink.Names(), ", ")))
	rate := md.AddInt("rate", sink.DefaultSampleRate, "sample rate")
	block := md.AddInt("block", sink.DefaultBlockSize, "number of frames in each block")
	cl := md.AddString("prefs", "", "preferences to apply (key::value; key::value)")
	script := md.AddString("patch", "", "lua script to apply to the preferences")
	useConsole := md.AddBool("console", true, "control the synth from the terminal")
	echo := md.AddBool("echo", false, "echo log to stdout")
	duration := md.AddDuration("duration", 0, "stop playing after duration (zero plays until interrupted)")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	if *echo {
		logger.SetEcho(os.Stdout, false)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	env, err := newEnvironment(ctx, *cl, *script)
	if err != nil {
		return err
	}

	eng, err := synth.NewEngine(env, *rate)
	if err != nil {
		return err
	}
	eng.FollowPreferences()

	cfg := sink.Config{SampleRate: *rate, BlockSize: *block}
	snk, err := sink.Open(*sinkName, cfg, eng)
	if err != nil {
		return err
	}
	defer snk.Close()

	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	if err := snk.Start(); err != nil {
		return err
	}
	fmt.Printf("playing %s preset on %s sink (%s)\n", env.Prefs.Preset, *sinkName, cfg.Normalise())

	g, ctx := errgroup.WithContext(ctx)

	if *useConsole {
		term, err := console.NewTerminal(os.Stdin)
		if err != nil {
			logger.Log(env, "console", err)
		} else {
			defer term.Restore()
		}

		con := console.NewConsole(os.Stdin, os.Stdout, env.Prefs, func() string {
			return fmt.Sprintf("%s\n%s", eng.Params(), eng.Stats())
		})
		g.Go(func() error {
			return con.Run(ctx)
		})
	}

	g.Go(func() error {
		tck := time.NewTicker(statsInterval)
		defer tck.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-tck.C:
				logger.Logf(env, "synth", "%s", eng.Stats())
			}
		}
	})

	err = g.Wait()
	logger.Logf(env, "synth", "%s", eng.Stats())

	if stopErr := snk.Stop(); stopErr != nil && err == nil {
		err = stopErr
	}
	if curated.Is(err, console.Quit) {
		return nil
	}
	return err
}
