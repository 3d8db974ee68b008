package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const playPollInterval = 2 * time.Second

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <code>",
		Short: "Play the current game interactively",
		Long: `Drive the lobby's current game from the terminal.

On your turn the board is printed and you are prompted for a move in
coordinate notation (e.g. e2e4). Type "exit" to abandon the game. While
waiting for the opponent the game is polled until it is your turn again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(args[0])
		},
	}
}

func runPlay(code string) error {
	var me Player
	if err := client.Get("/api/v1/players/me", &me); err != nil {
		return err
	}

	out := NewOutput(cfg.Output)
	reader := bufio.NewReader(os.Stdin)
	waiting := false

	for {
		var game GameState
		if err := client.Get(fmt.Sprintf("/api/v1/lobbies/%s/game", code), &game); err != nil {
			return err
		}

		if game.State != "in_progress" {
			printFinalState(out, game)
			return nil
		}

		if game.CurrentTurn != me.ID {
			if !waiting {
				fmt.Printf("Waiting for %s (%s) to move...\n", game.CurrentTurn, game.CurrentColor)
				waiting = true
			}
			time.Sleep(playPollInterval)
			continue
		}
		waiting = false

		fmt.Println()
		out.printBoard(game.Board)
		if game.LastMove != nil {
			fmt.Printf("Opponent played: %s\n", *game.LastMove)
		}

		move, quit, err := promptMove(reader, me.DisplayName, game.CurrentColor)
		if err != nil {
			return err
		}
		if quit {
			if err := client.Delete(fmt.Sprintf("/api/v1/lobbies/%s/game", code)); err != nil {
				return err
			}
			fmt.Println("Game abandoned")
			return nil
		}

		var result MoveResult
		if err := client.Post(fmt.Sprintf("/api/v1/lobbies/%s/game/move", code), map[string]string{"move": move}, &result); err != nil {
			// Rejected moves do not consume the turn; reprompt
			out.PrintError(err)
			continue
		}

		desc := result.Move
		if result.EnPassant {
			desc += " (en passant)"
		} else if result.Capture {
			desc += " (capture)"
		}
		fmt.Printf("Played: %s\n", desc)
	}
}

// promptMove reads a single move from stdin. It keeps prompting on empty
// input, and reports quit=true when the player types "exit".
func promptMove(reader *bufio.Reader, name, color string) (move string, quit bool, err error) {
	for {
		fmt.Printf("%s (%s) to move [or 'exit']: ", name, color)

		line, err := reader.ReadString('\n')
		if err != nil {
			return "", false, fmt.Errorf("failed to read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			return "", true, nil
		}
		return strings.ToLower(line), false, nil
	}
}

func printFinalState(out *Output, game GameState) {
	fmt.Println()
	out.printBoard(game.Board)

	switch game.State {
	case "stalemate":
		fmt.Println("Game over: stalemate")
	case "abandoned":
		fmt.Println("Game over: abandoned")
	default:
		if game.Winner != nil {
			fmt.Printf("Game over: %s wins (%s)\n", *game.Winner, game.State)
		} else {
			fmt.Printf("Game over: %s\n", game.State)
		}
	}
}
