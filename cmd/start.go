package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/beanboi7/chyp8/config"
	"github.com/beanboi7/chyp8/emu/audio"
	"github.com/beanboi7/chyp8/emu/audio/beeper"
	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/driver"
	"github.com/beanboi7/chyp8/emu/rom"
	"github.com/beanboi7/chyp8/emu/screen"

	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var startCmd = &cobra.Command{
	Use:   "start `path/ROM`",
	Short: "load and start the Emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  Start,
}

// chyp8 start 'path/to/ROM' -r 60 -c 600
func Start(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	logger := config.CreateLogger(settings.Debug || settings.Trace, settings.Quiet)

	program, err := rom.Load(args[0])
	if err != nil {
		return err
	}

	emu := cpu.NewEMU(
		cpu.WithLogger(logger),
		cpu.WithTrace(settings.Trace),
		cpu.WithRand(newRand(settings.Seed)),
	)
	if err := emu.LoadProgram(program); err != nil {
		return err
	}
	logger.Info("ROM loaded",
		log.String("path", args[0]),
		log.String("size", fmt.Sprintf("%d bytes", len(program))))

	win, err := screen.New(settings.Scale, settings.Keys)
	if err != nil {
		return err
	}
	defer win.Destroy()

	var buzzer driver.Buzzer = audio.Silent{}
	if !settings.Mute {
		b, err := beeper.New(settings.Tone)
		if err != nil {
			logger.Error("Audio disabled", log.Err(err))
		} else {
			buzzer = b
		}
	}

	d := driver.New(emu, win, buzzer, logger, driver.Options{
		ClockHz:   settings.Clock,
		RefreshHz: settings.Refresh,
	})
	if err := d.Run(cmd.Context()); err != nil {
		return fmt.Errorf("running %s: %w", args[0], err)
	}
	return nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
}

func init() {
	flags := startCmd.Flags()
	flags.IntP(config.KeyRefresh, "r", 60, "sets the refresh rate of the display in Hz")
	flags.IntP(config.KeyClock, "c", 60, "instructions executed per second, timers tick once per instruction")
	flags.Float64P(config.KeyScale, "s", 10, "window pixels per Chip-8 pixel")
	flags.Float64(config.KeyTone, 440, "buzzer frequency in Hz")
	flags.Bool(config.KeyMute, false, "disable the buzzer")
	flags.String(config.KeyKeys, "", "keypad layout, 16 keys for Chip-8 keys 0 to F (default \"x123qweasdzc4rfv\")")
	flags.Uint64(config.KeySeed, 0, "random seed, 0 picks one")
	flags.Bool(config.KeyTrace, false, "log every executed instruction")

	for _, key := range []string{
		config.KeyRefresh, config.KeyClock, config.KeyScale, config.KeyTone,
		config.KeyMute, config.KeyKeys, config.KeySeed, config.KeyTrace,
	} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(key)))
	}
}
