package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/jumppad-labs/hclcomplex"
	"github.com/jumppad-labs/hclcomplex/logger"
	"github.com/zclconf/go-cty/cty"
)

func main() {
	level, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = log.InfoLevel
	}

	l := logger.NewStdOutLogger(level)

	file := "./config.hcl"
	if len(os.Args) > 1 {
		file = os.Args[1]
	}

	p := hclparse.NewParser()
	f, diags := p.ParseHCLFile(file)
	if diags.HasErrors() {
		l.Error("unable to parse file", "file", file, "error", diags.Error())
		os.Exit(1)
	}

	attrs, diags := f.Body.JustAttributes()
	if diags.HasErrors() {
		l.Error("unable to read attributes", "file", file, "error", diags.Error())
		os.Exit(1)
	}

	ctx := hclcomplex.EvalContext(l)

	// attributes can refer to each other, keep evaluating until a pass
	// resolves nothing new
	pending := map[string]*hcl.Attribute{}
	for k, v := range attrs {
		pending[k] = v
	}

	for len(pending) > 0 {
		resolved := 0

		for _, name := range sortedNames(pending) {
			val, diags := pending[name].Expr.Value(ctx)
			if diags.HasErrors() {
				continue
			}

			ctx.Variables[name] = val
			delete(pending, name)
			resolved++

			printValue(name, val)
		}

		if resolved == 0 {
			for _, name := range sortedNames(pending) {
				_, diags := pending[name].Expr.Value(ctx)
				l.Error("unable to evaluate attribute", "name", name, "error", diags.Error())
			}

			os.Exit(1)
		}
	}
}

func printValue(name string, val cty.Value) {
	if val.Type() == cty.String {
		fmt.Printf("%s = %s\n", name, val.AsString())
		return
	}

	c, err := hclcomplex.FromCtyValue(val)
	if err != nil {
		fmt.Printf("%s = %s\n", name, val.GoString())
		return
	}

	fmt.Printf("%s =\n%s\n", name, c)
}

func sortedNames(m map[string]*hcl.Attribute) []string {
	names := []string{}
	for k := range m {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}
