package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/js-runtime/arraybuffer"
	"github.com/wippyai/js-runtime/object"
	"github.com/wippyai/js-runtime/typedarray"
)

func main() {
	var (
		kindName    = flag.String("kind", "", "Constructor to invoke (Int8Array, Uint16Array, ...)")
		length      = flag.Int64("length", -1, "Construct with a length argument")
		values      = flag.String("values", "", "Construct from comma-separated values")
		list        = flag.Bool("list", false, "List constructors and exit")
		debug       = flag.Bool("debug", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		typedarray.SetLogger(l)
		arraybuffer.SetLogger(l)
	}

	if *list {
		for _, k := range typedarray.Kinds() {
			fmt.Printf("  %-18s %d byte(s)/element, %s content\n", k, k.Size(), k.Content())
		}
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *kindName == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -kind <Constructor> [-length n | -values a,b,c]")
		fmt.Fprintln(os.Stderr, "       inspect -list")
		fmt.Fprintln(os.Stderr, "       inspect -i  (interactive mode)")
		os.Exit(1)
	}

	kind, ok := kindByName(*kindName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown constructor %q\n", *kindName)
		os.Exit(1)
	}

	if err := run(kind, *length, *values); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func kindByName(name string) (typedarray.Kind, bool) {
	for _, k := range typedarray.Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

func run(kind typedarray.Kind, length int64, values string) error {
	ctx := object.NewContext()

	var args []object.Value
	switch {
	case values != "":
		var elems []object.Value
		for _, s := range strings.Split(values, ",") {
			v, err := parseValue(kind, strings.TrimSpace(s))
			if err != nil {
				return err
			}
			elems = append(elems, v)
		}
		args = []object.Value{object.NewArrayLike(ctx.Realm, elems...)}
	case length >= 0:
		args = []object.Value{object.Number(length)}
	}

	target := typedarray.IntrinsicConstructor(ctx, kind)
	obj, err := typedarray.Construct(ctx, kind, target, args)
	if err != nil {
		return err
	}
	view := typedarray.ViewOf(obj)

	fmt.Printf("%s\n", describeView(ctx, view))
	fmt.Print(hexDump(view))
	return nil
}

func describeView(ctx *object.Context, view *typedarray.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s { length: %d, byteOffset: %d, byteLength: %d }\n",
		view.Kind(), view.ArrayLength(), view.ByteOffset(), view.ByteLength())
	b.WriteString("elements: [")
	for i := int64(0); i < view.ArrayLength(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		v, err := view.GetElement(ctx, i)
		if err != nil {
			fmt.Fprintf(&b, "<%v>", err)
			break
		}
		b.WriteString(formatValue(v))
	}
	b.WriteString("]")
	return b.String()
}

func formatValue(v object.Value) string {
	switch t := v.(type) {
	case object.Number:
		return fmt.Sprintf("%v", float64(t))
	case object.BigInt:
		return t.Int.String() + "n"
	default:
		return object.TypeName(v)
	}
}

func hexDump(view *typedarray.View) string {
	if !view.Attached() || view.Buffer().Detached() {
		return ""
	}
	data := view.Buffer().Block().Bytes()
	var b strings.Builder
	for i := 0; i < len(data); i += 16 {
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(&b, "%08x  ", i)
		for _, c := range data[i:end] {
			fmt.Fprintf(&b, "%02x ", c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
