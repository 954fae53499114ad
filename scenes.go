package main

import (
	"github.com/df07/go-monte-carlo-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List built-in and discovered file scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	response, err := scene.ListAllScenes(ctx.String("dir"))
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Group", "ID", "Name", "Description"})
	for _, group := range response.Groups {
		for _, info := range group.Scenes {
			table.Append([]string{group.Name, info.ID, info.DisplayName, info.Description})
		}
	}
	table.Render()
	return nil
}
