package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/anirudhraja/protocore"
	"github.com/anirudhraja/protocore/conformance"
	"github.com/anirudhraja/protocore/internal/config"
	"github.com/anirudhraja/protocore/internal/logging"
	"github.com/anirudhraja/protocore/internal/metrics"
	"github.com/anirudhraja/protocore/schema"
)

type env struct {
	cfg config.Config
	pc  *protocore.Protocore
	log zerolog.Logger
}

// setup merges the config file with the global flags and loads every
// configured schema.
func setup(c *cli.Context) (*env, error) {
	cfg := config.Default()
	if path := c.GlobalString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ProtoDirs = append(cfg.ProtoDirs, c.GlobalStringSlice("proto-dir")...)
	cfg.Schemas = append(cfg.Schemas, c.GlobalStringSlice("schema")...)
	cfg.DescriptorSets = append(cfg.DescriptorSets, c.GlobalStringSlice("descriptor-set")...)
	if lvl := c.GlobalString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &env{
		cfg: cfg,
		log: logging.New("protocore", cfg.Logging(logging.ProfileRuntime)),
		pc: protocore.New(
			protocore.WithProtoDirectories(cfg.ProtoDirs...),
			protocore.WithUnmarshalOptions(cfg.UnmarshalOptions()),
		),
	}
	for _, path := range cfg.Schemas {
		if err := e.pc.LoadSchema(path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug().Str("path", path).Msg("schema loaded")
	}
	for _, path := range cfg.DescriptorSets {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := e.pc.LoadDescriptorSet(b); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug().Str("path", path).Msg("descriptor set loaded")
	}
	return e, nil
}

// readInput reads the file named by the first argument, or in when there is
// none or it is "-".
func readInput(c *cli.Context, in io.Reader) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if name := c.Args().First(); name != "" && name != "-" {
		b, err = os.ReadFile(name)
	} else {
		b, err = io.ReadAll(in)
	}
	if err != nil {
		return nil, err
	}
	if c.Bool("hex") {
		b, err = hex.DecodeString(strings.Join(strings.Fields(string(b)), ""))
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
	}
	return b, nil
}

func inspectCommand(c *cli.Context, in io.Reader) error {
	data, err := readInput(c, in)
	if err != nil {
		return err
	}
	fields, err := protocore.New().Inspect(data)
	if err != nil {
		return err
	}
	for _, f := range fields {
		fmt.Fprintf(c.App.Writer, "%d %s\n", f.Number, f.Value)
	}
	return nil
}

func describeCommand(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	w := c.App.Writer
	name := c.Args().First()
	if name == "" {
		for _, n := range e.pc.ListMessages() {
			fmt.Fprintln(w, "message", n)
		}
		for _, n := range e.pc.ListEnums() {
			fmt.Fprintln(w, "enum", n)
		}
		for _, n := range e.pc.ListServices() {
			fmt.Fprintln(w, "service", n)
		}
		return nil
	}

	reg := e.pc.GetRegistry()
	if md, err := reg.GetMessage(name); err == nil {
		describeMessage(w, md)
		return nil
	}
	if ed, err := reg.GetEnum(name); err == nil {
		fmt.Fprintln(w, "enum", ed.FullName())
		for _, v := range ed.Values() {
			fmt.Fprintf(w, "  %d %s\n", v.Number(), v.Name())
		}
		return nil
	}
	sd, err := reg.GetService(name)
	if err != nil {
		return fmt.Errorf("no message, enum or service named %s", name)
	}
	fmt.Fprintln(w, "service", sd.FullName())
	for _, m := range sd.Methods() {
		fmt.Fprintf(w, "  rpc %s(%s) returns (%s)\n", m.Name(),
			streamed(m.ClientStreaming(), m.Input().FullName()),
			streamed(m.ServerStreaming(), m.Output().FullName()))
	}
	return nil
}

func describeMessage(w io.Writer, md *schema.MessageDescriptor) {
	fmt.Fprintln(w, "message", md.FullName())
	for _, f := range md.Fields() {
		var b strings.Builder
		fmt.Fprintf(&b, "  %d %s ", f.Number(), f.Name())
		switch {
		case f.IsMap():
			fmt.Fprintf(&b, "map<%s, %s>", typeName(f.MapKey()), typeName(f.MapValue()))
		case f.Cardinality() != schema.Optional:
			fmt.Fprintf(&b, "%s %s", f.Cardinality(), typeName(f))
		default:
			b.WriteString(typeName(f))
		}
		if f.IsPacked() {
			b.WriteString(" [packed]")
		}
		if o := f.Oneof(); o != nil && !o.IsSynthetic() {
			fmt.Fprintf(&b, " oneof %s", o.Name())
		}
		fmt.Fprintln(w, b.String())
	}
}

func typeName(f *schema.FieldDescriptor) string {
	switch {
	case f.Message() != nil:
		return f.Message().FullName()
	case f.Enum() != nil:
		return f.Enum().FullName()
	}
	return string(f.Kind())
}

func streamed(stream bool, name string) string {
	if stream {
		return "stream " + name
	}
	return name
}

func decodeCommand(c *cli.Context, in io.Reader) error {
	messageType := c.String("type")
	if messageType == "" {
		return errors.New("decode needs --type")
	}
	e, err := setup(c)
	if err != nil {
		return err
	}
	data, err := readInput(c, in)
	if err != nil {
		return err
	}
	fields, err := e.pc.Parse(data, messageType)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(printable(fields)); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err = c.App.Writer.Write(buf.Bytes())
	return err
}

// printable rewrites decoded values into forms YAML renders readably: bytes
// become base64 and converted domain values their String form.
func printable(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, v := range t {
			out[k] = printable(v)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[interface{}]interface{}, len(t))
		for k, v := range t {
			out[printable(k)] = printable(v)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, v := range t {
			out[i] = printable(v)
		}
		return out
	case []byte:
		return base64.StdEncoding.EncodeToString(t)
	case fmt.Stringer:
		return t.String()
	}
	return v
}

func conformanceCommand(c *cli.Context, in io.Reader) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	addr := e.cfg.Conformance.MetricsAddr
	if v := c.String("metrics-addr"); v != "" {
		addr = v
	}

	reg := prometheus.NewRegistry()
	m, err := metrics.NewHarness(reg)
	if err != nil {
		return err
	}
	h := conformance.NewHarness(e.pc,
		conformance.WithLogger(e.log),
		conformance.WithMetrics(m),
		conformance.WithLimits(conformance.Limits{MaxFrameBytes: e.cfg.Conformance.MaxFrameBytes}),
		conformance.WithSkipPrefixes(e.cfg.Conformance.SkipPrefixes...),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if addr != "" {
		e.log.Info().Str("addr", addr).Msg("serving metrics")
		g.Go(func() error { return metrics.Serve(ctx, addr, reg) })
	}
	g.Go(func() error {
		defer cancel()
		n, err := h.Serve(ctx, in, c.App.Writer)
		if err != nil {
			e.log.Error().Err(err).Int("tests", n).Msg("conformance harness stopped")
			return err
		}
		return nil
	})
	return g.Wait()
}
