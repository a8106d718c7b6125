package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/turtle"
)

func newScriptCmd(out *outputFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "script <file.json|file.yaml>",
		Short: "Run a JSON or YAML turtle script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := turtle.LoadScriptFile(args[0])
			if err != nil {
				return err
			}
			cv := turtle.NewCanvas()
			cv.SetDebugMode(out.debug)
			if err := s.Run(cv.NewCursor()); err != nil {
				return err
			}
			base := filepath.Base(args[0])
			return out.emit(cmd, cv, strings.TrimSuffix(base, filepath.Ext(base)))
		},
	}
}
