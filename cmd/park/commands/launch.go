package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newLaunchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launch <profile> <application> [requests...]",
		Short: "Resolve an environment and launch an application inside it",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Catalog edits during the session invalidate cached
			// resolutions for any follow-up launches.
			go func() {
				if err := c.components.App.WatchCatalog(ctx, c.components.Watcher); err != nil {
					c.components.Logger.Error(err)
				}
			}()

			handle, err := c.components.App.Launch(ctx, args[0], args[1], args[2:])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "launched %s (pid %d)\n", handle.Key, handle.ProcessID)

			detach, _ := cmd.Flags().GetBool("detach")
			if detach {
				return nil
			}

			// Block until the process exits, then report its fate.
			c.components.App.Wait()
			final, ok := c.components.App.LaunchHandle(handle.ID)
			if !ok {
				return zerr.New("launch record disappeared")
			}
			switch final.Status {
			case domain.LaunchExited:
				if final.ExitCode != 0 {
					return zerr.With(zerr.New("application exited with failure"), "exit_code", final.ExitCode)
				}
				return nil
			case domain.LaunchFailed:
				return zerr.With(zerr.New("application failed"), "cause", final.Error)
			default:
				return nil
			}
		},
	}
	cmd.Flags().BoolP("detach", "d", false, "Do not wait for the application to exit")
	return cmd
}
