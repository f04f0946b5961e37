package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rowtrack/app"
	"rowtrack/pkg/project/types"
	"rowtrack/pkg/spreadsheet"
)

func importCmd(opts *rootOpts) *cobra.Command {
	var (
		name       string
		notes      string
		surveyLink string
		sheet      string
	)
	cmd := &cobra.Command{
		Use:   "import <file.xlsx|file.csv>",
		Short: "Create a project from a sheet of stakeholder/tract records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("project name required (--name)")
			}
			records, err := spreadsheet.ReadProjectRecords(args[0], sheet)
			if err != nil {
				return err
			}
			opts.log.Info("records read", "file", args[0], "records", len(records))

			a, err := app.Open(opts.cfg, opts.log)
			if err != nil {
				return err
			}
			defer a.Close()

			msg, err := a.Projects.CreateProject(cmd.Context(), &types.ProjectInput{
				Name:           name,
				Notes:          notes,
				SurveyLink:     surveyLink,
				ProjectRecords: records,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&notes, "notes", "", "project notes")
	cmd.Flags().StringVar(&surveyLink, "survey-link", "", "link to the project survey")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet to read (default: first sheet)")
	return cmd
}
