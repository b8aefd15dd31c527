// Command scheme-repl is a minimal read-eval-print loop around the
// scheme package. It is glue around the interpreter core, not part of
// it: the core has no REPL, no CLI flags, and no I/O of its own.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/zhemalb/scheme"
)

func main() {
	expr := flag.String("e", "", "evaluate a single expression and exit")
	flag.Parse()

	interp := scheme.New()
	defer interp.Close()

	if *expr != "" {
		result, err := interp.Evaluate(*expr)
		if err != nil {
			log.Fatalf("eval error: %v", err)
		}
		fmt.Println(result)
		return
	}

	repl(interp)
}

func repl(interp *scheme.Interpreter) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("Bye.")
			return
		}
		result, err := interp.Evaluate(line)
		if err != nil {
			log.Println("error:", err)
			continue
		}
		fmt.Println("==>", result)
	}
}
