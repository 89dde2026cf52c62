// Command invaders runs or disassembles the Space Invaders 8080 ROM set.
// Grounded on the teacher's cmd/z80opt/main.go: a cobra root command with
// one subcommand per mode, flags bound directly to local variables, and
// fmt-based progress reporting.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/BlazingBBQ/8080-emulator/internal/keyboard"
	"github.com/BlazingBBQ/8080-emulator/internal/render"
	"github.com/BlazingBBQ/8080-emulator/pkg/cpu"
	"github.com/BlazingBBQ/8080-emulator/pkg/disasm"
	"github.com/BlazingBBQ/8080-emulator/pkg/machine"
)

// version is the build-time stamp; left as a fixed string since this
// module has no release pipeline that sets it via -ldflags.
const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "invaders",
		Short: "Intel 8080 emulator for the Space Invaders ROM set",
	}

	rootCmd.AddCommand(newRunCmd(), newDisasmCmd(), newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the emulator version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("invaders", version)
			return nil
		},
	}
}

func newDisasmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disasm [file]",
		Short: "Disassemble a raw 8080 binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			var mem cpu.Memory
			mem.Load(0, data)

			var pc uint16
			for int(pc) < len(data) {
				text, width := disasm.Disassemble(&mem, pc)
				fmt.Printf("%04X  %s", pc, text)
				if width == 0 {
					width = 1
				}
				pc += uint16(width)
			}
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	var (
		romDir    string
		verbosity int
		stopAfter uint64
		headless  bool
		snapshot  string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the Space Invaders ROM set",
		RunE: func(cmd *cobra.Command, args []string) error {
			images := machine.DefaultROMSet(romDir)
			paths := make([]string, len(images))
			offsets := make([]uint16, len(images))
			for i, img := range images {
				paths[i] = img.Path
				offsets[i] = img.Offset
			}

			m, err := machine.New(machine.Config{
				ROMPaths:   paths,
				ROMOffsets: offsets,
				StopAfter:  stopAfter,
				Verbosity:  verbosity,
			})
			if err != nil {
				return err
			}

			if snapshot != "" {
				if _, err := os.Stat(snapshot); err == nil {
					if err := machine.LoadSnapshot(snapshot, m); err != nil {
						return fmt.Errorf("loading snapshot %s: %w", snapshot, err)
					}
					if verbosity > 0 {
						fmt.Fprintf(os.Stderr, "resumed from snapshot %s at instruction %d\n", snapshot, m.CPU.InstructionCount)
					}
				}
			}

			m.CPU.IE = true

			frameOut := render.WriteFrame
			if headless {
				frameOut = render.Headless
			}

			var kb *keyboard.Reader
			if !headless {
				kb = keyboard.NewReader(m, keyboard.DefaultBindings())
				if err := kb.Start(); err != nil {
					return err
				}
				defer kb.Stop()
			}

			// One tick is one video frame: the step loop runs both
			// half-frames' worth of instructions (covering the mid-frame
			// and end-of-frame RST) between ticks, then draws once, the
			// way the cabinet's 60 Hz vblank paces the real hardware.
			ticker := time.NewTicker(16 * time.Millisecond)
			defer ticker.Stop()

			var runErr error
		runLoop:
			for m.Config.StopAfter == 0 || m.CPU.InstructionCount < m.Config.StopAfter {
				<-ticker.C

				for i := 0; i < 2*machine.InstructionsPerHalfFrame; i++ {
					if m.Config.StopAfter != 0 && m.CPU.InstructionCount >= m.Config.StopAfter {
						break
					}
					if _, err := m.Step(); err != nil {
						runErr = fmt.Errorf("stopped: %w", err)
						break runLoop
					}
				}

				if err := frameOut(os.Stdout, m.VRAM()); err != nil {
					return err
				}
				if kb != nil {
					kb.ClearPulses()
					select {
					case <-kb.QuitRequested:
						break runLoop
					default:
					}
				}
			}

			if snapshot != "" {
				if err := machine.SaveSnapshot(snapshot, m); err != nil {
					return fmt.Errorf("saving snapshot %s: %w", snapshot, err)
				}
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&romDir, "rom-dir", ".", "directory containing invaders.h/.g/.f/.e")
	cmd.Flags().IntVar(&verbosity, "verbosity", 0, "diagnostic verbosity (0 quiet)")
	cmd.Flags().Uint64Var(&stopAfter, "stop-after", 0, "stop after N instructions (0 = run forever)")
	cmd.Flags().BoolVar(&headless, "headless", false, "run without reading stdin or drawing frames")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "resume from and save to this snapshot file on exit")

	return cmd
}
