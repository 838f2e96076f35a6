// Command trackfilter runs the filter pipeline over a newline-delimited
// JSON fixture of waypoints (optionally gzipped) and writes the
// resulting tracks back out the same way.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"

	"github.com/rotblauer/trackfilter/catz"
	"github.com/rotblauer/trackfilter/params"
	"github.com/rotblauer/trackfilter/store"
	"github.com/rotblauer/trackfilter/stream"
	"github.com/rotblauer/trackfilter/trackfilter"
	"github.com/rotblauer/trackfilter/types/track"
	"github.com/rotblauer/trackfilter/types/waypoint"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("trackfilter", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trackfilter",
		Short: "Filter, reshape, and resegment GPS track fixtures",
		RunE:  runFilter,
	}

	flags := cmd.Flags()
	flags.String("in", "-", "input NDJSON waypoint fixture (.gz honored by extension); - for stdin")
	flags.String("out", "-", "output path for the resulting tracks; - for stdout")
	flags.String("boltdb", "", "optional bbolt database path for durable track storage across runs")
	flags.IntP("verbose", "v", 0, "status line verbosity")

	for _, opt := range optionFlags {
		flags.String(opt.flag, "", opt.usage)
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return bindViper(cmd)
	}
	return cmd
}

type optionFlag struct {
	flag  string
	usage string
	bind  func(opts *trackfilter.Options, val string)
}

var optionFlags = []optionFlag{
	{"name", "keep only tracks whose name matches this glob", func(o *trackfilter.Options, v string) { o.Name = &v }},
	{"title", "rename surviving tracks (strftime if it contains '%')", func(o *trackfilter.Options, v string) { o.Title = &v }},
	{"move", "shift every timestamp by a signed duration (e.g. 1h, -30m)", func(o *trackfilter.Options, v string) { o.Move = &v }},
	{"pack", "concatenate all tracks into one, in chronological order", func(o *trackfilter.Options, v string) { o.Pack = &v }},
	{"merge", "interleave all tracks by time, dropping exact-time duplicates", func(o *trackfilter.Options, v string) { o.Merge = &v }},
	{"discard", "with merge, don't fail on waypoints lacking a timestamp", func(o *trackfilter.Options, v string) { o.Discard = &v }},
	{"split", "split into multiple tracks (bare: by date; or a duration)", func(o *trackfilter.Options, v string) { o.Split = &v }},
	{"sdistance", "split into multiple tracks by great-circle distance (e.g. 2k, 1m)", func(o *trackfilter.Options, v string) { o.SDistance = &v }},
	{"start", "drop waypoints before this partial timestamp (YYYYMMDDHHMMSS prefix)", func(o *trackfilter.Options, v string) { o.Start = &v }},
	{"stop", "drop waypoints after this partial timestamp", func(o *trackfilter.Options, v string) { o.Stop = &v }},
	{"faketime", "fabricate timestamps: [f]YYYYMMDDHHMMSS[+step]", func(o *trackfilter.Options, v string) { o.Faketime = &v }},
	{"fix", "synthesize a fix kind (pps, dgps, 3d, 2d, none)", func(o *trackfilter.Options, v string) { o.Fix = &v }},
	{"course", "synthesize true heading between consecutive waypoints", func(o *trackfilter.Options, v string) { o.Course = &v }},
	{"speed", "synthesize speed from consecutive waypoints' distance and elapsed time", func(o *trackfilter.Options, v string) { o.Speed = &v }},
	{"seg2trk", "split tracks into separate tracks at internal segment breaks", func(o *trackfilter.Options, v string) { o.Seg2Trk = &v }},
	{"trk2seg", "merge all tracks into one, keeping their boundaries as segments", func(o *trackfilter.Options, v string) { o.Trk2Seg = &v }},
	{"segment", "insert segment breaks on anomalous gaps and denoise near-duplicate points", func(o *trackfilter.Options, v string) { o.Segment = &v }},
	{"minpoints", "drop tracks with fewer than this many waypoints", func(o *trackfilter.Options, v string) { o.MinPoints = &v }},
}

func bindViper(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("TRACKFILTER")
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			_ = cmd.Flags().Set(f.Name, v.GetString(f.Name))
		}
	})
	return nil
}

func runFilter(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	in, _ := flags.GetString("in")
	out, _ := flags.GetString("out")
	boltPath, _ := flags.GetString("boltdb")
	verbose, _ := flags.GetInt("verbose")

	opts := trackfilter.Options{}
	for _, of := range optionFlags {
		if !flags.Changed(of.flag) {
			continue
		}
		val, _ := flags.GetString(of.flag)
		of.bind(&opts, val)
	}

	s, closeStore, err := openStore(boltPath)
	if err != nil {
		return fmt.Errorf("trackfilter: open store: %w", err)
	}
	defer closeStore()

	if err := loadWaypoints(in, s); err != nil {
		return fmt.Errorf("trackfilter: load fixture: %w", err)
	}

	sinks := trackfilter.Sinks{
		Warning: func(msg string) { slog.Warn(msg) },
		Status:  func(msg string) { slog.Info(msg) },
		Verbose: verbose,
	}
	if err := trackfilter.Process(s, opts, sinks); err != nil {
		return err
	}

	return writeTracks(out, s)
}

func openStore(boltPath string) (store.TrackStore, func(), error) {
	if boltPath == "" {
		return store.NewMemStore(), func() {}, nil
	}
	bs, err := store.OpenBoltStore(boltPath)
	if err != nil {
		return nil, nil, err
	}
	return bs, func() { _ = bs.Close() }, nil
}

// loadWaypoints reads NDJSON records of the form
// {"track": "<name>", ...waypoint fields...} and groups them into
// tracks in the store in order of each track name's first appearance.
// The "track" field is sniffed with gjson before the rest of the
// record is decoded through waypoint.Waypoint's own UnmarshalJSON, so
// a malformed waypoint on one line doesn't require buffering the
// whole file to recover the grouping key.
func loadWaypoints(path string, s store.TrackStore) error {
	r, closer, err := openReader(path)
	if err != nil {
		return err
	}
	defer closer()

	tracksByName := map[string]*track.Track{}

	ctx := context.Background()
	lines := stream.NDJSON[json.RawMessage](ctx, r)
	for raw := range lines {
		name := gjson.GetBytes(raw, "track").String()
		t, ok := tracksByName[name]
		if !ok {
			t = s.InsertHead(name)
			tracksByName[name] = t
		}
		var w waypoint.Waypoint
		if err := json.Unmarshal(raw, &w); err != nil {
			return fmt.Errorf("waypoint in track %q: %w", name, err)
		}
		s.AddWaypoint(t, &w)
	}
	return nil
}

func writeTracks(path string, s store.TrackStore) error {
	w, closer, err := openWriter(path)
	if err != nil {
		return err
	}
	defer closer()

	enc := json.NewEncoder(w)
	for _, t := range s.Tracks() {
		for _, wp := range t.Waypoints {
			// Waypoint defines its own MarshalJSON, so it can't be
			// embedded directly in an output struct without its method
			// getting promoted over the "track" field. Marshal it on its
			// own and splice the track name in as a sibling key instead.
			raw, err := json.Marshal(wp)
			if err != nil {
				return err
			}
			var fields map[string]json.RawMessage
			if err := json.Unmarshal(raw, &fields); err != nil {
				return err
			}
			name, err := json.Marshal(t.Name)
			if err != nil {
				return err
			}
			fields["track"] = name
			if err := enc.Encode(fields); err != nil {
				return err
			}
		}
	}
	return nil
}

func openReader(path string) (io.Reader, func(), error) {
	if path == "-" || path == "" {
		return os.Stdin, func() {}, nil
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := catz.NewGZFileReader(path)
		if err != nil {
			return nil, nil, err
		}
		return gr, func() { _ = gr.Close() }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return bufio.NewReader(f), func() { _ = f.Close() }, nil
}

func openWriter(path string) (io.Writer, func(), error) {
	if path == "-" || path == "" {
		return os.Stdout, func() {}, nil
	}
	if strings.HasSuffix(path, ".gz") {
		cfg := catz.DefaultGZFileWriterConfig()
		cfg.CompressionLevel = params.DefaultGZipCompressionLevel
		gw, err := catz.NewGZFileWriter(path, cfg)
		if err != nil {
			return nil, nil, err
		}
		return gw, func() { _ = gw.Close() }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
