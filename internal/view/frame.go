package view

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/metaverse-slayer/internal/entities"
)

const (
	// Title heads every screen
	Title = "⚔️ Metaverse Slayer ⚔️"
	// Subtitle sits under the title
	Subtitle = "Team up to protect the Metaverse!"

	// RetryHint is offered when a screen's data failed to load; any key retries
	RetryHint = "[r] Retry"

	healthBarWidth = 20
)

// Emphasis tells a renderer how to style a line
type Emphasis int

const (
	EmphasisNormal Emphasis = iota
	EmphasisHeading
	EmphasisDim
	EmphasisStat
	EmphasisAlert
	EmphasisGood
)

// Line is one row of a frame
type Line struct {
	Text     string
	Emphasis Emphasis
}

// Frame is a laid-out screen
type Frame struct {
	State State
	Lines []Line
	// Hints lists the keys that do something on this screen
	Hints []string
	// Notice must be dismissed before anything else happens
	Notice string
}

// Details carries what the downstream screens loaded for themselves
type Details struct {
	// Templates are the mintable characters on the selection screen
	Templates []entities.CharacterRecord
	Boss      *entities.Boss
	// Status describes work in flight, e.g. a pending transaction
	Status string
}

// Build lays out the screen Select picks for s
func Build(s entities.Session, d Details) Frame {
	var f Frame
	switch Select(s) {
	case StateLoading:
		f = Loading()
	case StateDisconnected:
		f = Disconnected()
	case StateNeedsCharacter:
		f = SelectCharacter(s.Account, d.Templates, d.Status)
	default:
		f = Arena(s.Account, s.Character, d.Boss, d.Status)
	}

	if s.LastError != "" {
		f.Lines = append(f.Lines, Line{}, Line{Text: "⚠ " + s.LastError, Emphasis: EmphasisAlert})
	}
	if s.Notice != "" {
		f.Notice = s.Notice
		f.Hints = []string{"[enter] OK", "[q] Quit"}
	}

	return f
}

// Loading is shown while the session check is outstanding
func Loading() Frame {
	return Frame{
		State: StateLoading,
		Lines: []Line{{Text: "Loading…", Emphasis: EmphasisDim}},
		Hints: []string{"[q] Quit"},
	}
}

// Disconnected asks the user to connect a wallet
func Disconnected() Frame {
	return Frame{
		State: StateDisconnected,
		Lines: []Line{
			{Text: "🗡️  No wallet connected", Emphasis: EmphasisDim},
			{},
			{Text: "Connect Wallet To Get Started", Emphasis: EmphasisHeading},
		},
		Hints: []string{"[c] Connect wallet", "[q] Quit"},
	}
}

// SelectCharacter lists the mintable templates
func SelectCharacter(account entities.Account, templates []entities.CharacterRecord, status string) Frame {
	lines := []Line{
		{Text: "Connected as " + account.Short(), Emphasis: EmphasisDim},
		{},
		{Text: "Mint Your Hero. Choose wisely.", Emphasis: EmphasisHeading},
		{},
	}

	if len(templates) == 0 && status == "" {
		lines = append(lines, Line{Text: "Fetching characters…", Emphasis: EmphasisDim})
	}
	for i, t := range templates {
		if i >= 9 {
			break
		}
		lines = append(lines,
			Line{Text: fmt.Sprintf("[%d] Mint %s", i+1, t.Name)},
			Line{
				Text:     fmt.Sprintf("    HP %d  ⚔️ Attack Damage %d", t.MaxHP, t.AttackDamage),
				Emphasis: EmphasisStat,
			},
		)
	}

	if status != "" {
		lines = append(lines, Line{}, Line{Text: status, Emphasis: EmphasisGood})
	}

	hints := []string{"[q] Quit"}
	switch {
	case len(templates) > 0:
		hints = []string{fmt.Sprintf("[1-%d] Mint", min(len(templates), 9)), "[q] Quit"}
	case status != "":
		hints = []string{RetryHint, "[q] Quit"}
	}

	return Frame{State: StateNeedsCharacter, Lines: lines, Hints: hints}
}

// Arena shows the boss and the player's character
func Arena(account entities.Account, character *entities.CharacterRecord, boss *entities.Boss, status string) Frame {
	lines := []Line{
		{Text: "Connected as " + account.Short(), Emphasis: EmphasisDim},
		{},
	}

	if boss != nil {
		lines = append(lines,
			Line{Text: "🔥 " + boss.Name + " 🔥", Emphasis: EmphasisHeading},
			Line{Text: healthLine(boss.HP, boss.MaxHP), Emphasis: EmphasisAlert},
			Line{},
		)
	} else {
		lines = append(lines, Line{Text: "Summoning the boss…", Emphasis: EmphasisDim}, Line{})
	}

	if character.Present() {
		lines = append(lines,
			Line{Text: "Your Character", Emphasis: EmphasisDim},
			Line{Text: character.Name, Emphasis: EmphasisHeading},
			Line{Text: healthLine(character.HP, character.MaxHP), Emphasis: EmphasisGood},
			Line{Text: fmt.Sprintf("⚔️ Attack Damage: %d", character.AttackDamage), Emphasis: EmphasisStat},
		)
	}

	if status != "" {
		lines = append(lines, Line{}, Line{Text: status, Emphasis: EmphasisGood})
	}

	hints := []string{"[q] Quit"}
	switch {
	case boss != nil:
		hints = []string{"[a] 💥 Attack " + boss.Name, "[q] Quit"}
	case status != "":
		hints = []string{RetryHint, "[q] Quit"}
	}

	return Frame{State: StateReady, Lines: lines, Hints: hints}
}

// HealthBar draws hp out of maxHP as a bar of width cells
func HealthBar(hp, maxHP uint64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if maxHP > 0 {
		if hp > maxHP {
			hp = maxHP
		}
		filled = int(hp * uint64(width) / maxHP)
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func healthLine(hp, maxHP uint64) string {
	return fmt.Sprintf("%s %d / %d HP", HealthBar(hp, maxHP, healthBarWidth), hp, maxHP)
}

// Describe renders a frame as plain text
func Describe(f Frame) string {
	var b strings.Builder

	b.WriteString(Title + "\n")
	b.WriteString(Subtitle + "\n\n")
	for _, l := range f.Lines {
		b.WriteString(l.Text + "\n")
	}
	if f.Notice != "" {
		b.WriteString("\n[!] " + f.Notice + "\n")
	}

	return b.String()
}
