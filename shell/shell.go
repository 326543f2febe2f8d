package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/lexiplay/scrabble/ai/bot"
	"github.com/lexiplay/scrabble/config"
	"github.com/lexiplay/scrabble/gaddag"
	"github.com/lexiplay/scrabble/game"
	"github.com/lexiplay/scrabble/move"
	"github.com/lexiplay/scrabble/movegen"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("please start a game first with the `new` command")
	errQuit              = errors.New("quit requested")
)

type ShellController struct {
	l      *readline.Instance
	config *config.Config

	dict *gaddag.Dictionary
	rng  *frand.RNG

	game        *game.Game
	gen         *movegen.Generator
	bot         *bot.Player
	curGenPlays []*move.Move
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController sets up the line editor. The dictionary is loaded
// lazily, on the first `new`.
func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mscrabble>\033[0m ",
		HistoryFile:     "/tmp/scrabble_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, config: cfg, rng: frand.New()}
}

// newController is a controller with no terminal, for tests and scripts.
func newController(cfg *config.Config, dict *gaddag.Dictionary, rng *frand.RNG) *ShellController {
	return &ShellController{config: cfg, dict: dict, rng: rng}
}

func (sc *ShellController) stderr() io.Writer {
	if sc.l == nil {
		return os.Stderr
	}
	return sc.l.Stderr()
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	// handle options
	lastWasOption := false
	lastOption := ""
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") {
			lastWasOption = true
			lastOption = fields[idx][1:]
			continue
		}
		if lastWasOption {
			lastWasOption = false
			options[lastOption] = fields[idx]
		} else {
			args = append(args, fields[idx])
		}
	}
	if lastWasOption {
		return nil, errWrongOptionSyntax
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) standardModeSwitch(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye":
		return nil, errQuit
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newGame(cmd)
	case "rack":
		return sc.rack(cmd)
	case "board", "s":
		return sc.show(cmd)
	case "play":
		return sc.play(cmd)
	case "exch":
		return sc.exchange(cmd)
	case "pass":
		return sc.pass(cmd)
	case "gen":
		return sc.generate(cmd)
	case "ai":
		return sc.aiMove(cmd)
	case "history":
		return sc.history(cmd)
	case "score":
		return sc.score(cmd)
	default:
		log.Debug().Msgf("you said: %q", line)
		return nil, fmt.Errorf("command %q not found; try `help`", cmd.cmd)
	}
}

// Execute runs a single command line, as if typed at the prompt.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.standardModeSwitch(line)
	if errors.Is(err, errQuit) {
		sig <- syscall.SIGINT
		return
	}
	if err != nil && !errors.Is(err, errNoData) {
		sc.showError(err)
		return
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		resp, err := sc.standardModeSwitch(line)
		if errors.Is(err, errQuit) {
			sig <- syscall.SIGINT
			break
		}
		if err != nil {
			if !errors.Is(err, errNoData) {
				sc.showError(err)
			}
			continue
		}
		if resp != nil && resp.message != "" {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func (sc *ShellController) Cleanup() {
	log.Debug().Msg("shell cleanup")
}
