package app

import (
	"github.com/spf13/cobra"

	"ringqueue/pkg/script"
)

func newExecCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "exec <op[:value]>...",
		Example: "exec add-all:1,2,3 remove:2 poll\nexec --capacity 2 --growth-mode add --growth-amount 3 add:a add:b add:c\n",
		Short:   "run operations given on the command line",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &script.Script{}
			for _, arg := range args {
				op, err := script.ParseOp(arg)
				if err != nil {
					return err
				}
				s.Ops = append(s.Ops, op)
			}
			o.defaults(s)
			return o.runScript(cmd, s)
		},
	}
}
