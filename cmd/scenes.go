package cmd

import (
	"bytes"

	"github.com/mtandon-io/lumentrace/scenes"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Scenes lists every registered demo scene by name and description.
func Scenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Description"})
	for _, e := range scenes.List() {
		table.Append([]string{e.Name, e.Description})
	}
	table.Render()

	logger.Noticef("registered scenes\n%s", buf.String())
	return nil
}
