package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"go.ssc.dev/internal/toolchain"
	"go.ssc.dev/pkg"
)

func main() {
	target := flag.String("target", "c", "output language: c or llvm")
	outPath := flag.String("o", "", "write the generated source to this file instead of stdout")
	run := flag.Bool("run", false, "compile the generated C with -cc and run it")
	cc := flag.String("cc", toolchain.DefaultCC, "C compiler used by -run")
	flag.Parse()

	t, err := ssc.ParseTarget(*target)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *run && t != ssc.TargetC {
		fmt.Fprintln(os.Stderr, "-run requires -target c")
		os.Exit(2)
	}

	c := ssc.NewCompiler()
	c.Target = t

	var out string
	switch flag.NArg() {
	case 0:
		out, err = c.CompileFromReader(os.Stdin)
	case 1:
		out, err = c.Compile(flag.Arg(0))
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(out), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %q: %v\n", *outPath, err)
			os.Exit(1)
		}
	} else if !*run {
		fmt.Print(out)
	}

	if *run {
		stdout, err := toolchain.CompileAndRun(context.Background(), *cc, out)
		fmt.Print(stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func printError(err error) {
	switch e := errors.Cause(err).(type) {
	case *ssc.LexError:
		fmt.Fprintln(os.Stderr, "Lexical error:", e.Reason)
	case *ssc.ParseError:
		fmt.Fprintln(os.Stderr, "Syntax error:", e)
	case *ssc.CodeGenError:
		fmt.Fprintln(os.Stderr, "Code generation error:", e)
	default:
		fmt.Fprintln(os.Stderr, err)
	}
}
