package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/lexiplay/scrabble/ai/bot"
	"github.com/lexiplay/scrabble/gaddag"
	"github.com/lexiplay/scrabble/game"
	"github.com/lexiplay/scrabble/move"
	"github.com/lexiplay/scrabble/movegen"
	"github.com/lexiplay/scrabble/tilemapping"
)

const defaultGenPlays = 15

func (sc *ShellController) loadDictionary() error {
	if sc.dict != nil {
		return nil
	}
	d, err := gaddag.GetDictionary(sc.config.DictionaryPath())
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}
	sc.dict = d
	return nil
}

// newGame starts a game. Every argument is a human player; -cpu adds a
// computer player. With no players at all it is you against the computer.
func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	if err := sc.loadDictionary(); err != nil {
		return nil, err
	}
	rules, err := game.NewDefaultRules(sc.dict)
	if err != nil {
		return nil, err
	}
	players := []*game.Player{}
	for _, name := range cmd.args {
		players = append(players, game.NewPlayer(name, false))
	}
	if cpu, ok := cmd.options["cpu"]; ok {
		players = append(players, game.NewPlayer(cpu, true))
	}
	if len(players) == 0 {
		players = []*game.Player{game.NewPlayer("you", false), game.NewPlayer("computer", true)}
	}

	sc.game = game.NewGame(rules, sc.rng)
	sc.game.Start(players)
	sc.gen = movegen.NewGenerator(sc.dict, rules.LetterDistribution())
	sc.bot = bot.NewPlayer(sc.gen, sc.config.BotDifficulty(), sc.rng)
	sc.curGenPlays = nil

	out := []string{}
	out = append(out, sc.computerTurns()...)
	out = append(out, sc.game.ToDisplayText())
	return msg(strings.Join(out, "\n")), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

// rack shows the rack of the player on turn, or replaces it.
func (sc *ShellController) rack(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	onturn := sc.game.PlayerOnTurn()
	if cmd.args == nil {
		return msg(sc.game.RackFor(onturn).String()), nil
	}
	rack, err := tilemapping.RackFromString(strings.ToUpper(cmd.args[0]), sc.game.LetterDistribution())
	if err != nil {
		return nil, err
	}
	if err := sc.game.SetRackFor(onturn, rack); err != nil {
		return nil, err
	}
	sc.curGenPlays = nil
	return msg(sc.game.ToDisplayText()), nil
}

// play accepts either `play <coords> <word>` or `play #n` for the n-th
// play of the last `gen`.
func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	var m *move.Move
	switch {
	case len(cmd.args) == 1 && strings.HasPrefix(cmd.args[0], "#"):
		playID, err := strconv.Atoi(cmd.args[0][1:])
		if err != nil {
			return nil, err
		}
		idx := playID - 1
		if idx < 0 || idx > len(sc.curGenPlays)-1 {
			return nil, errors.New("play outside range")
		}
		m = sc.curGenPlays[idx]
	case len(cmd.args) == 2:
		var err error
		m, err = move.NewPlaceMoveFromString(sc.game.PlayerOnTurn(), cmd.args[0], cmd.args[1],
			sc.game.LetterDistribution())
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("usage: play <coords> <word> or play #<n>")
	}
	return sc.commit(m)
}

func (sc *ShellController) exchange(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: exch <tiles>")
	}
	tiles, err := tilemapping.ToTiles(strings.ToUpper(cmd.args[0]), sc.game.LetterDistribution())
	if err != nil {
		return nil, err
	}
	return sc.commit(move.NewExchangeMove(sc.game.PlayerOnTurn(), tiles))
}

func (sc *ShellController) pass(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return sc.commit(move.NewPassMove(sc.game.PlayerOnTurn()))
}

// commit plays the move, then lets any computer players that follow take
// their turns.
func (sc *ShellController) commit(m *move.Move) (*Response, error) {
	if err := sc.game.PlayMove(m); err != nil {
		return nil, err
	}
	sc.curGenPlays = nil
	out := []string{"Played " + m.ShortDescription()}
	out = append(out, sc.computerTurns()...)
	out = append(out, sc.game.ToDisplayText())
	if sc.game.IsGameOver() {
		out = append(out, sc.finalScores())
	}
	return msg(strings.Join(out, "\n")), nil
}

func (sc *ShellController) botMove() *move.Move {
	ctx, cancel := context.WithTimeout(context.Background(), sc.config.BotTimeout())
	defer cancel()
	return sc.bot.GenerateMoveWithDeadline(ctx, sc.game)
}

// computerTurns plays for computer players for as long as one is on turn.
func (sc *ShellController) computerTurns() []string {
	out := []string{}
	for !sc.game.IsGameOver() && sc.game.CurrentPlayer().IsComputer {
		p := sc.game.CurrentPlayer()
		m := sc.botMove()
		if !sc.game.ExecuteMove(m) {
			log.Error().Str("move", m.ShortDescription()).Msg("bot-move-rejected")
			m = move.NewPassMove(sc.game.PlayerOnTurn())
			sc.game.ExecuteMove(m)
		}
		out = append(out, fmt.Sprintf("%s played %s for %d", p.Name, m.ShortDescription(), m.Score()))
	}
	return out
}

func moveTableHeader() string {
	return "     Move                    Leave    Score"
}

func MoveTableRow(idx int, m *move.Move) string {
	return fmt.Sprintf("%3d: %-24s%-9s%-6d", idx+1,
		m.ShortDescription(), tilemapping.TilesString(m.Leave()), m.Score())
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	numPlays := defaultGenPlays
	if cmd.args != nil {
		var err error
		numPlays, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
	}
	onturn := sc.game.PlayerOnTurn()
	plays := sc.gen.GenerateAll(sc.game.Board(), sc.game.RackFor(onturn), onturn)
	if len(plays) > numPlays {
		plays = plays[:numPlays]
	}
	sc.curGenPlays = plays
	if len(plays) == 0 {
		return msg("No plays found."), nil
	}
	lines := []string{moveTableHeader()}
	for i, p := range plays {
		lines = append(lines, MoveTableRow(i, p))
	}
	return msg(strings.Join(lines, "\n")), nil
}

// aiMove lets the computer play for whoever is on turn.
func (sc *ShellController) aiMove(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if sc.game.IsGameOver() {
		return nil, game.ErrGameOver
	}
	return sc.commit(sc.botMove())
}

func (sc *ShellController) history(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	out, err := yaml.Marshal(struct {
		ID      string                `yaml:"id"`
		Turns   []game.Turn           `yaml:"turns"`
		EndRack []game.RackAdjustment `yaml:"end_adjustments,omitempty"`
	}{sc.game.Uid(), sc.game.History(), sc.game.EndAdjustments()})
	if err != nil {
		return nil, err
	}
	return msg(string(out)), nil
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if sc.game.IsGameOver() {
		return msg(sc.finalScores()), nil
	}
	lines := []string{}
	for i, p := range sc.game.Players() {
		marker := "  "
		if i == sc.game.PlayerOnTurn() {
			marker = "->"
		}
		lines = append(lines, fmt.Sprintf("%s %-16s %4d", marker, p.Name, p.Score))
	}
	return msg(strings.Join(lines, "\n")), nil
}

func (sc *ShellController) finalScores() string {
	lines := []string{"Game over."}
	for _, p := range sc.game.Players() {
		lines = append(lines, fmt.Sprintf("   %-16s %4d", p.Name, p.Score))
	}
	if w := sc.game.Winner(); w >= 0 {
		lines = append(lines, sc.game.Players()[w].Name+" wins!")
	} else {
		lines = append(lines, "It's a tie.")
	}
	return strings.Join(lines, "\n")
}
