package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ewaldman/brandloom/internal/brand"
	"github.com/ewaldman/brandloom/internal/config"
	"github.com/ewaldman/brandloom/internal/content"
	"github.com/ewaldman/brandloom/internal/dashboard"
	"github.com/ewaldman/brandloom/internal/errors"
	"github.com/ewaldman/brandloom/internal/generate"
	"github.com/ewaldman/brandloom/internal/ops"
	"github.com/ewaldman/brandloom/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(st ops.Stores, cfg *config.Config, baseDir string) *cli.App {
	app := &cli.App{
		Name:    "brandloom",
		Usage:   "Brand voice and content dashboard",
		Version: Version,
		Commands: []*cli.Command{
			brandCmd(st, baseDir),
			noteCmd(st),
			dashboardCmd(st),
			generateCmd(st, cfg),
			serveCmd(st, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// brandCmd groups the brand subcommands.
func brandCmd(st ops.Stores, baseDir string) *cli.Command {
	return &cli.Command{
		Name:  "brand",
		Usage: "Manage brands",
		Subcommands: []*cli.Command{
			brandCreateCmd(st),
			brandListCmd(st),
			brandShowCmd(st),
			brandUpdateCmd(st),
			brandDeleteCmd(st),
			brandUseCmd(st),
			brandExportCmd(st, baseDir),
		},
	}
}

func brandCreateCmd(st ops.Stores) *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a brand from setup answers",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Brand display name"},
			&cli.StringFlag{Name: "tones", Required: true, Usage: "Comma-separated core tone IDs"},
			&cli.StringFlag{Name: "tone", Required: true, Usage: "Refined tone ID"},
			&cli.StringFlag{Name: "audience", Required: true, Usage: "Target audience description"},
			&cli.StringFlag{Name: "values", Required: true, Usage: "Comma-separated pairID=sideKey selections"},
			&cli.StringFlag{Name: "offers-json", Usage: "Offers as a JSON array of {name, description, ctaUrl}"},
		},
		Action: func(c *cli.Context) error {
			draft := brand.SetupDraft{
				Name:                c.String("name"),
				CoreTones:           parseCSV(c.String("tones")),
				RefinedTone:         c.String("tone"),
				AudienceDescription: c.String("audience"),
				AvatarValues:        parseKeyValues(c.String("values")),
			}
			if raw := c.String("offers-json"); raw != "" {
				if err := json.Unmarshal([]byte(raw), &draft.Offers); err != nil {
					return outputError(errors.NewInvalidRequest("invalid offers-json: " + err.Error()))
				}
			}

			output, err := ops.BrandCreate(st, ops.BrandCreateInput{Draft: draft})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

func brandListCmd(st ops.Stores) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List brands with the current selection",
		Action: func(c *cli.Context) error {
			output, err := ops.BrandList(st, ops.BrandListInput{})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

func brandShowCmd(st ops.Stores) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one brand by ID",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			output, err := ops.BrandFetch(st, ops.BrandFetchInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

func brandUpdateCmd(st ops.Stores) *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Merge new values into an existing brand",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "New display name"},
			&cli.StringFlag{Name: "tones", Usage: "Replacement comma-separated core tone IDs"},
			&cli.StringFlag{Name: "tone", Usage: "Replacement refined tone ID"},
			&cli.StringFlag{Name: "tone-name", Usage: "Replacement refined tone display name"},
			&cli.StringFlag{Name: "rules", Usage: "Replacement comma-separated style rules"},
			&cli.StringFlag{Name: "audience", Usage: "Replacement audience description"},
			&cli.StringFlag{Name: "values", Usage: "Replacement pairID=sideKey selections"},
			&cli.StringFlag{Name: "offers-json", Usage: "Replacement offers as a JSON array"},
		},
		Action: func(c *cli.Context) error {
			input := ops.BrandUpdateInput{ID: c.Args().First()}

			if c.IsSet("name") {
				name := c.String("name")
				input.Patch.Name = &name
			}
			if c.IsSet("tones") {
				tones := parseCSV(c.String("tones"))
				input.Patch.CoreTones = &tones
			}
			if c.IsSet("tone") {
				tone := c.String("tone")
				input.Patch.RefinedTone = &tone
			}
			if c.IsSet("tone-name") {
				toneName := c.String("tone-name")
				input.Patch.RefinedToneName = &toneName
			}
			if c.IsSet("rules") {
				rules := parseCSV(c.String("rules"))
				input.Patch.ToneRules = &rules
			}
			if c.IsSet("audience") {
				audience := c.String("audience")
				input.Patch.AudienceDescription = &audience
			}
			if c.IsSet("values") {
				values := parseKeyValues(c.String("values"))
				input.Patch.AvatarValues = &values
			}
			if c.IsSet("offers-json") {
				var offers []brand.Offer
				if err := json.Unmarshal([]byte(c.String("offers-json")), &offers); err != nil {
					return outputError(errors.NewInvalidRequest("invalid offers-json: " + err.Error()))
				}
				input.Patch.Offers = &offers
			}

			output, err := ops.BrandUpdate(st, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

func brandDeleteCmd(st ops.Stores) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a brand (content keeps its brand reference)",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			output, err := ops.BrandDelete(st, ops.BrandDeleteInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

func brandUseCmd(st ops.Stores) *cli.Command {
	return &cli.Command{
		Name:      "use",
		Usage:     "Make a brand the current selection",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			output, err := ops.BrandUse(st, ops.BrandUseInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

func brandExportCmd(st ops.Stores, baseDir string) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export a brand and its content to a JSONL file",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Export file path (default: exports/<brand>-<timestamp>.jsonl)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.BrandExport(st, baseDir, ops.BrandExportInput{
				BrandID: c.Args().First(),
				Path:    c.String("path"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// noteCmd groups the content piece subcommands.
func noteCmd(st ops.Stores) *cli.Command {
	return &cli.Command{
		Name:  "note",
		Usage: "Capture and manage content pieces",
		Subcommands: []*cli.Command{
			noteAddCmd(st),
			noteListCmd(st),
			noteShowCmd(st),
			noteUpdateCmd(st),
			noteDeleteCmd(st),
		},
	}
}

func noteAddCmd(st ops.Stores) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Capture a content piece (text notes read stdin when piped)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Value: "text", Usage: "Note type: text|audio|video|document"},
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Title override"},
			&cli.StringFlag{Name: "text", Usage: "Original content (or pipe via stdin)"},
			&cli.StringFlag{Name: "brand", Aliases: []string{"b"}, Usage: "Brand ID (defaults to current brand)"},
			&cli.StringFlag{Name: "file-name", Usage: "Document file name"},
			&cli.Float64Flag{Name: "file-size-kb", Usage: "Document size in KB"},
			&cli.StringFlag{Name: "file-type", Usage: "Document MIME type"},
			&cli.StringFlag{Name: "duration", Usage: "Audio duration, e.g. 0:45"},
			&cli.StringFlag{Name: "platforms", Usage: "Comma-separated target platform IDs"},
			&cli.StringFlag{Name: "status", Usage: "Lifecycle tag (default draft)"},
		},
		Action: func(c *cli.Context) error {
			text := c.String("text")
			if text == "" && stdinHasData() {
				piped, err := readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				text = piped
			}

			input := ops.NoteCaptureInput{
				Type:       content.NoteType(c.String("type")),
				Title:      c.String("title"),
				Text:       text,
				BrandID:    c.String("brand"),
				FileName:   c.String("file-name"),
				FileSizeKB: c.Float64("file-size-kb"),
				FileType:   c.String("file-type"),
				Duration:   c.String("duration"),
				Platforms:  parseCSV(c.String("platforms")),
				Status:     c.String("status"),
			}

			output, err := ops.NoteCapture(st, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

func noteListCmd(st ops.Stores) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List content pieces in insertion order",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "brand", Aliases: []string{"b"}, Usage: "Brand ID filter; omit or \"all\" for everything"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.NoteList(st, ops.NoteListInput{BrandID: c.String("brand")})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

func noteShowCmd(st ops.Stores) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one content piece by ID",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			output, err := ops.NoteFetch(st, ops.NoteFetchInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

func noteUpdateCmd(st ops.Stores) *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Merge new values into an existing content piece",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "brand", Aliases: []string{"b"}, Usage: "Replacement brand reference"},
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Replacement title"},
			&cli.StringFlag{Name: "text", Usage: "Replacement original content (or pipe via stdin)"},
			&cli.StringFlag{Name: "type", Usage: "Replacement type: text|audio|video|document"},
			&cli.StringFlag{Name: "platforms", Usage: "Replacement comma-separated platform IDs"},
			&cli.StringFlag{Name: "status", Usage: "Replacement lifecycle tag"},
			&cli.StringFlag{Name: "duration", Usage: "Replacement audio duration"},
			&cli.StringFlag{Name: "file-type", Usage: "Replacement document MIME type"},
		},
		Action: func(c *cli.Context) error {
			input := ops.NoteUpdateInput{ID: c.Args().First()}

			if c.IsSet("brand") {
				brandID := c.String("brand")
				input.Patch.BrandID = &brandID
			}
			if c.IsSet("title") {
				title := c.String("title")
				input.Patch.Title = &title
			}
			if c.IsSet("text") {
				text := c.String("text")
				input.Patch.OriginalContent = &text
			} else if stdinHasData() {
				text, err := readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				if text != "" {
					input.Patch.OriginalContent = &text
				}
			}
			if c.IsSet("type") {
				noteType := content.NoteType(c.String("type"))
				input.Patch.Type = &noteType
			}
			if c.IsSet("platforms") {
				platforms := parseCSV(c.String("platforms"))
				input.Patch.Platforms = &platforms
			}
			if c.IsSet("status") {
				status := c.String("status")
				input.Patch.Status = &status
			}
			if c.IsSet("duration") {
				duration := c.String("duration")
				input.Patch.Duration = &duration
			}
			if c.IsSet("file-type") {
				fileType := c.String("file-type")
				input.Patch.FileType = &fileType
			}

			output, err := ops.NoteUpdate(st, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

func noteDeleteCmd(st ops.Stores) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a content piece",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			output, err := ops.NoteDelete(st, ops.NoteDeleteInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// dashboardCmd creates the dashboard command.
func dashboardCmd(st ops.Stores) *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "Filter content pieces the way the dashboard does",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "Case-insensitive substring over title and content"},
			&cli.StringFlag{Name: "brand", Aliases: []string{"b"}, Usage: "Brand ID or \"all\""},
			&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: "date", Usage: "Filter mode: date|brand|platform"},
			&cli.StringFlag{Name: "date", Usage: "Calendar date YYYY-MM-DD for date mode (default today)"},
			&cli.StringFlag{Name: "platform", Usage: "Platform ID or \"all\" for platform mode"},
		},
		Action: func(c *cli.Context) error {
			input := ops.DashboardInput{
				Query:    c.String("query"),
				BrandID:  c.String("brand"),
				Mode:     dashboard.Mode(c.String("mode")),
				Date:     c.String("date"),
				Platform: c.String("platform"),
			}

			output, err := ops.DashboardView(st, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// generateCmd creates the generate command.
func generateCmd(st ops.Stores, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Draft platform variants in a brand's voice (reads text from stdin when piped)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "text", Usage: "Raw content to transform"},
			&cli.StringFlag{Name: "brand", Aliases: []string{"b"}, Usage: "Brand voice (defaults to current brand)"},
			&cli.StringFlag{Name: "platforms", Usage: "Comma-separated target platform IDs"},
			&cli.StringFlag{Name: "content-id", Usage: "Existing piece to attach results to"},
			&cli.BoolFlag{Name: "save", Usage: "Save results as a new piece"},
		},
		Action: func(c *cli.Context) error {
			text := c.String("text")
			if text == "" && stdinHasData() {
				piped, err := readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				text = piped
			}

			platforms := parseCSV(c.String("platforms"))
			if len(platforms) == 0 {
				platforms = cfg.DefaultPlatforms
			}

			input := ops.GenerateInput{
				Text:      text,
				BrandID:   c.String("brand"),
				Platforms: platforms,
				ContentID: c.String("content-id"),
				Save:      c.Bool("save"),
			}

			output, err := ops.Generate(context.Background(), st, generate.New(cfg), input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// serveCmd creates the serve command for the web dashboard.
func serveCmd(st ops.Stores, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the web dashboard",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8383, Usage: "Port"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(st, cfg, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if appErr, ok := err.(*errors.Error); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", appErr.Code, appErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// parseCSV splits a comma-separated string, trimming blanks.
func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// parseKeyValues parses "a=b,c=d" into a map.
func parseKeyValues(s string) map[string]string {
	if s == "" {
		return nil
	}
	out := make(map[string]string)
	for _, part := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k != "" && v != "" {
			out[k] = v
		}
	}
	return out
}
