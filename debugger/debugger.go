// Package debugger implements the single-threaded, cooperative stepper
// spec.md §4.7 describes: a gate interposed between a console.Console's run
// loop and its Cpu.Step, driven by a line-oriented prompt running on its own
// execution context.
package debugger

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"nestest-cpu/console"
	"nestest-cpu/cpu"
)

const (
	historyFile = ".nes-rs-history.txt"
	idleSleep   = 16 * time.Millisecond
	defaultPages = 10
)

// Debugger gates a Console's run loop. It communicates with its line editor
// (running on an auxiliary goroutine, per spec.md §5) through two
// single-slot handoffs: one line of input from reader to emulator, one
// acknowledgement from emulator to reader, so the prompt is strictly
// turn-based and never races the emulator loop.
type Debugger struct {
	cons *console.Console

	lineCh chan string   // reader -> emulator, capacity 1
	ackCh  chan struct{} // emulator -> reader, capacity 1
}

// New wires a Debugger to cons. Call Start to launch the prompt and obtain
// the poll function to pass as console.Console.Run's keepGoing argument.
func New(cons *console.Console) *Debugger {
	return &Debugger{
		cons:   cons,
		lineCh: make(chan string, 1),
		ackCh:  make(chan struct{}, 1),
	}
}

// Start launches the line-editor goroutine and returns the non-blocking
// poll function the emulator loop should call every iteration: it drains at
// most one pending command line per call, so the prompt never stalls
// emulation, then idles briefly while Stepping is false, per spec.md §4.7.
func (d *Debugger) Start() func() bool {
	go d.runPrompt()
	return d.poll
}

func (d *Debugger) poll() bool {
	select {
	case line := <-d.lineCh:
		d.dispatch(line)
		select {
		case d.ackCh <- struct{}{}:
		default:
		}
	default:
	}
	if !d.cons.Stepping {
		time.Sleep(idleSleep)
	}
	return !d.cons.Shutdown
}

func (d *Debugger) dispatch(line string) {
	appendHistory(line)

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "help":
		printHelp()
	case "exit":
		d.cons.Shutdown = true
	case "stop", "s":
		d.cons.Stepping = false
	case "continue", "c":
		d.cons.Stepping = true
	case "dump", "d":
		d.dump(fields[1:])
	case "objdump", "od":
		d.objdump(fields[1:])
	default:
		fmt.Printf("unknown command: %s (try \"help\")\n", fields[0])
	}
}

// dump hex-dumps pages*16 bytes starting at addr, defaulting to 10 pages
// and the current program counter, per spec.md §4.7. It reads through the
// bus's unrestricted path so inspecting memory never perturbs I/O touch
// state.
func (d *Debugger) dump(args []string) {
	pages, addr, err := parseAddrArgs(args, d.cons.Cpu.ProgramCounter)
	if err != nil {
		fmt.Println("dump:", err)
		return
	}
	for page := 0; page < pages; page++ {
		base := addr + uint16(page*16)
		fmt.Printf("%04X | ", base)
		for i := 0; i < 16; i++ {
			fmt.Printf("%02X ", d.cons.Bus.ReadU8Unrestricted(base+uint16(i)))
		}
		fmt.Println()
	}
}

// objdump dumps the opcode table entry at addr; a full multi-instruction
// disassembly listing is left as a stub, per spec.md §4.7 ("may be stub").
func (d *Debugger) objdump(args []string) {
	_, addr, err := parseAddrArgs(args, d.cons.Cpu.ProgramCounter)
	if err != nil {
		fmt.Println("objdump:", err)
		return
	}
	op := d.cons.Bus.ReadU8Unrestricted(addr)
	entry, ok := cpu.Opcodes[op]
	if !ok {
		fmt.Printf("%04X: $%02X is not a recognized opcode\n", addr, op)
		return
	}
	fmt.Println(spew.Sdump(entry))
}

func parseAddrArgs(args []string, defaultAddr uint16) (pages int, addr uint16, err error) {
	pages = defaultPages
	i := 0
	if i < len(args) && args[i] == "-p" {
		if i+1 >= len(args) {
			return 0, 0, fmt.Errorf("-p requires a value")
		}
		n, err := strconv.Atoi(args[i+1])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid page count %q: %w", args[i+1], err)
		}
		pages = n
		i += 2
	}

	addr = defaultAddr
	if i < len(args) {
		v, err := strconv.ParseUint(strings.TrimPrefix(args[i], "0x"), 16, 16)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid address %q: %w", args[i], err)
		}
		addr = uint16(v)
	}
	return pages, addr, nil
}

func printHelp() {
	fmt.Println(`commands:
  help                      show this message
  exit                      shut down the emulator
  stop, s                   pause stepping
  continue, c               resume stepping
  dump, d [-p N] <addr>     hex-dump N*16 bytes starting at addr (default N=10, addr=PC)
  objdump, od [-p N] <addr> show the opcode table entry at addr`)
}

func appendHistory(line string) {
	f, err := os.OpenFile(historyFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintln(f, line)
}

// promptModel is the bubbletea model for the line editor: it accumulates
// keystrokes into a line and, on Enter, hands the line to the emulator
// context and blocks on its acknowledgement before accepting more input.
type promptModel struct {
	input  string
	lineCh chan string
	ackCh  chan struct{}
	done   bool
}

func (m promptModel) Init() tea.Cmd { return nil }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		line := m.input
		m.input = ""
		m.lineCh <- line
		<-m.ackCh
		if line == "exit" {
			m.done = true
			return m, tea.Quit
		}

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}

	case tea.KeyRunes:
		m.input += string(keyMsg.Runes)
	}

	return m, nil
}

func (m promptModel) View() string {
	prompt := lipgloss.NewStyle().Bold(true).Render("(nes) ")
	return prompt + m.input
}

func (d *Debugger) runPrompt() {
	p := tea.NewProgram(promptModel{lineCh: d.lineCh, ackCh: d.ackCh})
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "debugger prompt error:", err)
	}
}
