package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/segmentio/encoding/json"

	"github.com/wippyai/jvm-bridge/accessor"
	"github.com/wippyai/jvm-bridge/bridge"
	"github.com/wippyai/jvm-bridge/descriptor"
	"github.com/wippyai/jvm-bridge/jvm"
	"github.com/wippyai/jvm-bridge/lookup"
	"github.com/wippyai/jvm-bridge/vm"
)

func main() {
	var (
		images      = flag.String("image", "", "Class image manifests, comma-separated TOML files")
		className   = flag.String("class", "", "Owner class internal name (com/example/Counter)")
		fieldName   = flag.String("field", "", "Field name")
		desc        = flag.String("desc", "", "Field descriptor (optional, matched by name if omitted)")
		setValue    = flag.String("set", "", "Value to set; omit to get")
		doSet       = flag.Bool("write", false, "Perform a set with -set (allows setting empty-ish values)")
		privileged  = flag.Bool("privileged", false, "Install the trusted lookup singleton")
		acquire     = flag.Bool("lookup", false, "Acquire the trusted lookup and exit")
		jsonOut     = flag.Bool("json", false, "JSON output")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *images == "" {
		fmt.Fprintln(os.Stderr, "Usage: jfield -image <classes.toml>[,more.toml] -class <name> -field <name> [-set value]")
		fmt.Fprintln(os.Stderr, "       jfield -image <classes.toml> -lookup -privileged")
		fmt.Fprintln(os.Stderr, "       jfield -image <classes.toml> -i  (interactive mode)")
		os.Exit(1)
	}

	rt, err := loadRuntime(*images, *privileged)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(rt); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *acquire {
		if err := acquireLookup(rt, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *className == "" || *fieldName == "" {
		fmt.Fprintln(os.Stderr, "Error: -class and -field are required")
		os.Exit(1)
	}

	write := *doSet || *setValue != ""
	if err := runFieldOp(rt, *className, *fieldName, *desc, *setValue, write, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadRuntime(images string, privileged bool) (*vm.Runtime, error) {
	var opts []vm.Option
	if privileged {
		opts = append(opts, vm.WithTrustedLookup())
	}
	rt := vm.New(opts...)

	if err := rt.LoadManifests(strings.Split(images, ",")...); err != nil {
		return nil, err
	}
	return rt, nil
}

func acquireLookup(rt *vm.Runtime, jsonOut bool) error {
	obj, err := lookup.AcquireTrustedLookup(rt)
	if err != nil {
		return err
	}
	if jsonOut {
		return emitJSON(map[string]any{
			"class": obj.Class().Name(),
		})
	}
	fmt.Printf("Acquired trusted lookup: %s\n", obj.Class().Name())
	return nil
}

// fieldReport is the JSON shape of a get/set result.
type fieldReport struct {
	Class      string `json:"class"`
	Field      string `json:"field"`
	Descriptor string `json:"descriptor"`
	Kind       string `json:"kind"`
	Static     bool   `json:"static"`
	Value      any    `json:"value"`
}

func runFieldOp(rt *vm.Runtime, className, fieldName, desc, literal string, write, jsonOut bool) error {
	f, err := bindField(rt, className, fieldName, desc)
	if err != nil {
		return err
	}

	// One-shot instance operations run against a fresh instance; named
	// long-lived receivers are an interactive-mode feature.
	var recv jvm.Object
	if !f.IsStatic() {
		recv, err = rt.NewInstance(className)
		if err != nil {
			return err
		}
	}

	if write {
		v, err := parseValue(rt, f.Kind(), literal)
		if err != nil {
			return err
		}
		if err := f.Set(recv, v); err != nil {
			return err
		}
	}

	v, err := f.Get(recv)
	if err != nil {
		return err
	}

	report := fieldReport{
		Class:      f.Owner(),
		Field:      f.Name(),
		Descriptor: f.Descriptor(),
		Kind:       f.Kind().String(),
		Static:     f.IsStatic(),
		Value:      displayValue(v),
	}
	if jsonOut {
		return emitJSON(report)
	}
	fmt.Printf("%s.%s (%s, static=%v) = %v\n",
		report.Class, report.Field, report.Descriptor, report.Static, report.Value)
	return nil
}

func bindField(rt *vm.Runtime, className, fieldName, desc string) (*accessor.Field, error) {
	if desc != "" {
		return accessor.Bind(rt, className, fieldName, desc)
	}
	return accessor.Match(rt, className, accessor.Matcher{Name: fieldName})
}

// parseValue turns a command line literal into a Value of the field's kind.
func parseValue(rt *vm.Runtime, kind descriptor.Kind, literal string) (jvm.Value, error) {
	switch kind {
	case descriptor.KindBool:
		b, err := strconv.ParseBool(literal)
		if err != nil {
			return jvm.Value{}, fmt.Errorf("parse boolean %q: %w", literal, err)
		}
		return jvm.Bool(b), nil
	case descriptor.KindByte:
		n, err := strconv.ParseInt(literal, 10, 8)
		if err != nil {
			return jvm.Value{}, fmt.Errorf("parse byte %q: %w", literal, err)
		}
		return jvm.Byte(int8(n)), nil
	case descriptor.KindChar:
		if r := []rune(literal); len(r) == 1 && r[0] <= 0xFFFF {
			return jvm.Char(uint16(r[0])), nil
		}
		n, err := strconv.ParseUint(literal, 10, 16)
		if err != nil {
			return jvm.Value{}, fmt.Errorf("parse char %q: %w", literal, err)
		}
		return jvm.Char(uint16(n)), nil
	case descriptor.KindShort:
		n, err := strconv.ParseInt(literal, 10, 16)
		if err != nil {
			return jvm.Value{}, fmt.Errorf("parse short %q: %w", literal, err)
		}
		return jvm.Short(int16(n)), nil
	case descriptor.KindInt:
		n, err := strconv.ParseInt(literal, 10, 32)
		if err != nil {
			return jvm.Value{}, fmt.Errorf("parse int %q: %w", literal, err)
		}
		return jvm.Int(int32(n)), nil
	case descriptor.KindLong:
		n, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return jvm.Value{}, fmt.Errorf("parse long %q: %w", literal, err)
		}
		return jvm.Long(n), nil
	case descriptor.KindFloat:
		f, err := strconv.ParseFloat(literal, 32)
		if err != nil {
			return jvm.Value{}, fmt.Errorf("parse float %q: %w", literal, err)
		}
		return jvm.Float(float32(f)), nil
	case descriptor.KindDouble:
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return jvm.Value{}, fmt.Errorf("parse double %q: %w", literal, err)
		}
		return jvm.Double(f), nil
	default:
		// Object fields accept string literals, stored as string instances.
		return jvm.Ref(rt.NewString(literal)), nil
	}
}

// displayValue renders a Value for output, unwrapping string objects.
func displayValue(v jvm.Value) any {
	if obj, ok := v.TryRef(); ok {
		if obj == nil {
			return nil
		}
		if s, ok := vm.StringValue(obj); ok {
			return s
		}
		return obj.Class().Name()
	}
	return v.Interface()
}

func emitJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// recoverBridgePanic converts a bridge abort into an error, for display
// paths that must keep the terminal alive.
func recoverBridgePanic(errp *error) {
	if r := recover(); r != nil {
		if err, ok := r.(error); ok {
			*errp = err
			return
		}
		*errp = fmt.Errorf("bridge abort: %v", r)
	}
}

// rawGet reads a field through the fatal bridge entry points, dispatching on
// kind the way the constrained higher-level API would. Used by interactive
// mode after validation, with the panic guard as a last line of defense for
// the terminal.
func rawGet(rt *vm.Runtime, f *accessor.Field, on jvm.Object) (result any, err error) {
	defer recoverBridgePanic(&err)

	owner, name := f.Owner(), f.Name()
	switch f.Kind() {
	case descriptor.KindBool:
		result = bridge.GetZFieldValue(rt, owner, name, on)
	case descriptor.KindByte:
		result = bridge.GetBFieldValue(rt, owner, name, on)
	case descriptor.KindChar:
		result = bridge.GetCFieldValue(rt, owner, name, on)
	case descriptor.KindShort:
		result = bridge.GetSFieldValue(rt, owner, name, on)
	case descriptor.KindInt:
		result = bridge.GetIFieldValue(rt, owner, name, on)
	case descriptor.KindLong:
		result = bridge.GetJFieldValue(rt, owner, name, on)
	case descriptor.KindFloat:
		result = bridge.GetFFieldValue(rt, owner, name, on)
	case descriptor.KindDouble:
		result = bridge.GetDFieldValue(rt, owner, name, on)
	default:
		obj := bridge.GetObjectFieldValue(rt, owner, name, f.Descriptor(), on)
		result = displayValue(jvm.Ref(obj))
	}
	return result, nil
}
