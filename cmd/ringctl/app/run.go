package app

import (
	"github.com/spf13/cobra"

	"ringqueue/pkg/script"
	"ringqueue/util/file"
)

func newRunCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "run <pathname>",
		Example: "run ops.yaml\nrun ops.json -o json\n",
		Short:   "run a yaml or json operation script",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &script.Script{}
			if err := file.UnmarshalFile(s, args[0]); err != nil {
				return err
			}
			o.defaults(s)
			return o.runScript(cmd, s)
		},
	}
}
