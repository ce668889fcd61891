// Command accjit compiles an accumulator-language program to native
// code, runs it, and prints the result.
//
// The program comes from -e, from a file via -f, or from the first
// positional argument; with none of those it runs the demo program
// "+ + * - /".
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"accjit/pkg/jit"
	"accjit/pkg/token"
)

const demoProgram = "+ + * - /"

func main() {
	expr := flag.String("e", "", "program string to compile and run")
	file := flag.String("f", "", "read the program from a file")
	repeat := flag.Int("n", 1, "number of independent compile-and-run cycles")
	verbose := flag.Bool("v", false, "log code size and fingerprint")
	flag.Parse()

	src, err := programSource(*expr, *file, flag.Args())
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if *repeat < 1 {
		log.Fatal("Error: -n must be at least 1")
	}

	for i := 0; i < *repeat; i++ {
		result, err := run(src, *verbose)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		fmt.Println(result)
	}
}

// programSource resolves the program string from the flags, in order
// of precedence: -e, -f, positional argument, demo program.
func programSource(expr, file string, args []string) (string, error) {
	if expr != "" && file != "" {
		return "", fmt.Errorf("-e and -f are mutually exclusive")
	}
	if expr != "" {
		return expr, nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read program file: %w", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	return demoProgram, nil
}

// run performs one full compile-and-run cycle.
func run(src string, verbose bool) (int64, error) {
	if !verbose {
		return jit.Run(src)
	}

	ops, err := token.Tokenize(src)
	if err != nil {
		return 0, err
	}
	code := jit.Compile(ops)
	log.Printf("compiled %d opcodes to %d bytes of code (fingerprint %s)",
		len(ops), len(code), jit.Fingerprint(code))

	prog, err := jit.Load(code)
	if err != nil {
		return 0, err
	}
	defer prog.Free()
	return prog.Run(), nil
}
