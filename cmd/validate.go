package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/assessly/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate <definition.json|dir>...",
	Short: "Check assessment definitions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var paths []string
		for _, arg := range args {
			info, err := os.Stat(arg)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				paths = append(paths, arg)
				continue
			}
			found, err := filepath.Glob(filepath.Join(arg, "*.json"))
			if err != nil {
				return err
			}
			paths = append(paths, found...)
		}

		failed := 0
		for _, p := range paths {
			def, err := content.Load(p)
			if err != nil {
				failed++
				fmt.Printf("FAIL  %s\n      %v\n", p, err)
				continue
			}
			fmt.Printf("ok    %s  (%s, %d steps, %d questions)\n", p, def.ID, len(def.Steps), def.Questions())
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d definitions invalid", failed, len(paths))
		}
		return nil
	},
}
