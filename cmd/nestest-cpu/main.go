// Command nestest-cpu loads an iNES ROM, runs it on the CPU core, and
// optionally compares its trace against a Nintendulator-format reference
// log or drops into the interactive debugger. See spec.md §6 for the full
// command-line surface and exit-code contract.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"nestest-cpu/console"
	"nestest-cpu/debugger"
)

const version = "nestest-cpu 0.1.0"

// Exit codes, per spec.md §7.
const (
	exitOK           = 0
	exitGeneric      = 1
	exitInvalidROM   = 2
	exitLogMissing   = 3
	exitInvalidPC    = 4
	exitRuntimePanic = 101
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "panic:", r)
			code = exitRuntimePanic
		}
	}()

	fs := flag.NewFlagSet("nestest-cpu", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		testLog  string
		pcFlag   string
		verbose  bool
		debug    bool
		showVer  bool
		showHelp bool
	)
	for _, name := range []string{"t", "test"} {
		fs.StringVar(&testLog, name, "", "Attach a Nintendulator-format reference log for step-by-step comparison")
	}
	for _, name := range []string{"p", "program-counter"} {
		fs.StringVar(&pcFlag, name, "", "Override reset PC (accepts optional 0x prefix)")
	}
	for _, name := range []string{"v", "verbose"} {
		fs.BoolVar(&verbose, name, false, "Emit CPU trace lines")
	}
	for _, name := range []string{"d", "debug"} {
		fs.BoolVar(&debug, name, false, "Enable interactive debugger prompt")
	}
	fs.BoolVar(&showVer, "version", false, "Print version and exit")
	for _, name := range []string{"h", "help"} {
		fs.BoolVar(&showHelp, name, false, "Print usage and exit")
	}

	if err := fs.Parse(args); err != nil {
		return exitGeneric
	}

	if showHelp {
		fs.Usage()
		return exitOK
	}
	if showVer {
		fmt.Println(version)
		return exitOK
	}

	romArgs := fs.Args()
	if len(romArgs) < 1 {
		fmt.Fprintln(os.Stderr, "usage: nestest-cpu [flags] <rom-file>")
		return exitGeneric
	}

	rom, err := os.ReadFile(romArgs[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading ROM: %v\n", err)
		return exitGeneric
	}

	cons, err := console.New(rom)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading ROM: %v\n", err)
		return exitInvalidROM
	}

	var pcOverride *uint16
	if pcFlag != "" {
		trimmed := strings.TrimPrefix(strings.TrimPrefix(pcFlag, "0x"), "0X")
		v, err := strconv.ParseUint(trimmed, 16, 16)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid program counter %q: %v\n", pcFlag, err)
			return exitInvalidPC
		}
		pc := uint16(v)
		pcOverride = &pc
	}

	cons.Reset(pcOverride)
	cons.Cpu.Verbose = verbose

	if testLog != "" {
		f, err := os.Open(testLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening reference log: %v\n", err)
			return exitLogMissing
		}
		defer f.Close()
		cons.Cpu.AttachLog(f)
	}

	keepGoing := func() bool { return true }
	if debug {
		keepGoing = debugger.New(cons).Start()
	}

	if err := cons.Run(keepGoing); err != nil {
		console.CrashDump(cons.Cpu)
		panic(err)
	}

	return exitOK
}
