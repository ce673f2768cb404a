package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/pointfield/bfs"
	"github.com/katalvlaran/pointfield/core"
	"github.com/katalvlaran/pointfield/interaction"
)

// errQuit stops the command loop.
var errQuit = errors.New("quit")

// errUsage reports a malformed command line.
var errUsage = errors.New("usage")

// command is one entry of the dispatch table.
type command struct {
	args  int // number of arguments, -1 for any
	usage string
	run   func(sh *shell, args []string) error
}

// shell reads commands and applies them to a session.
type shell struct {
	session *interaction.Session
	out     io.Writer
	log     zerolog.Logger
	prompt  bool
	cmds    map[string]command
}

// run executes lines from in until EOF or quit. Command errors are printed
// and the loop goes on; only a read failure is returned.
func (sh *shell) run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		if sh.prompt {
			fmt.Fprint(sh.out, "> ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		if err := sh.exec(sc.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintln(sh.out, "error:", err)
		}
	}
}

// exec runs a single command line. Blank lines and "#" comments are ignored.
func (sh *shell) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	if sh.cmds == nil {
		sh.cmds = commandTable()
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	cmd, ok := sh.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command %q (try help)", name)
	}
	if cmd.args >= 0 && len(args) != cmd.args {
		return fmt.Errorf("%w: %s %s", errUsage, name, cmd.usage)
	}
	sh.log.Trace().Str("command", name).Strs("args", args).Msg("exec")

	return cmd.run(sh, args)
}

func commandTable() map[string]command {
	return map[string]command{
		"help":    {0, "", (*shell).cmdHelp},
		"quit":    {0, "", func(*shell, []string) error { return errQuit }},
		"exit":    {0, "", func(*shell, []string) error { return errQuit }},
		"mode":    {1, "<idle|add|edit|delete|link>", (*shell).cmdMode},
		"click":   {2, "<x> <y>", (*shell).cmdClick},
		"press":   {2, "<x> <y>", (*shell).cmdPress},
		"drag":    {2, "<x> <y>", (*shell).cmdDrag},
		"release": {0, "", (*shell).cmdRelease},
		"cancel":  {0, "", (*shell).cmdCancel},
		"add":     {2, "<x> <y>", (*shell).cmdAdd},
		"move":    {3, "<name> <x> <y>", (*shell).cmdMove},
		"link":    {2, "<a> <b>", (*shell).cmdLink},
		"delete":  {1, "<name>", (*shell).cmdDelete},
		"path":    {2, "<source> <target>", (*shell).cmdPath},
		"weight":  {2, "<a> <b>", (*shell).cmdWeight},
		"points":  {0, "", (*shell).cmdPoints},
		"edges":   {0, "", (*shell).cmdEdges},
		"adj":     {0, "", (*shell).cmdAdj},
		"islands": {0, "", (*shell).cmdIslands},
		"stats":   {0, "", (*shell).cmdStats},
		"check":   {0, "", (*shell).cmdCheck},
		"dump":    {0, "", (*shell).cmdDump},
	}
}

func (sh *shell) graph() *core.Graph { return sh.session.Graph() }

func (sh *shell) cmdHelp(_ []string) error {
	names := make([]string, 0, len(sh.cmds))
	for name := range sh.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(sh.out, strings.TrimSpace(name+" "+sh.cmds[name].usage))
	}

	return nil
}

func (sh *shell) cmdMode(args []string) error {
	m, err := interaction.ParseMode(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "mode", sh.session.SetMode(m))

	return nil
}

func (sh *shell) cmdClick(args []string) error {
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}
	ev, err := sh.session.Click(x, y)
	if err != nil {
		return err
	}
	sh.printEvent(ev)

	return nil
}

// printEvent reports a click outcome; structural changes also print the
// adjacency list.
func (sh *shell) printEvent(ev interaction.Event) {
	switch ev.Kind {
	case interaction.EventAdded:
		fmt.Fprintln(sh.out, "added", ev.Name)
	case interaction.EventSelected:
		fmt.Fprintln(sh.out, "selected", ev.Name)
	case interaction.EventConnected:
		fmt.Fprintln(sh.out, "connected", ev.Name, ev.Other)
		sh.printAdjacency()
	case interaction.EventDeleted:
		fmt.Fprintln(sh.out, "deleted", ev.Name, ev.Removed)
		sh.printAdjacency()
	case interaction.EventLockToggled:
		state := "unlocked"
		if ev.Locked {
			state = "locked"
		}
		fmt.Fprintln(sh.out, state, ev.Name)
	default:
		fmt.Fprintln(sh.out, "nothing")
	}
}

func (sh *shell) cmdPress(args []string) error {
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}
	name, ok, err := sh.session.Press(x, y)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(sh.out, "nothing")
		return nil
	}
	fmt.Fprintln(sh.out, "dragging", name)

	return nil
}

func (sh *shell) cmdDrag(args []string) error {
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}

	return sh.session.Drag(x, y)
}

func (sh *shell) cmdRelease(_ []string) error {
	name, ok := sh.session.Release()
	if !ok {
		fmt.Fprintln(sh.out, "nothing")
		return nil
	}
	p, err := sh.graph().Point(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "moved %s to %s\n", name, formatPoint(p))

	return nil
}

func (sh *shell) cmdCancel(_ []string) error {
	sh.session.CancelLink()
	return nil
}

func (sh *shell) cmdAdd(args []string) error {
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "added", sh.graph().AddPoint(x, y))

	return nil
}

func (sh *shell) cmdMove(args []string) error {
	x, y, err := parseXY(args[1:])
	if err != nil {
		return err
	}

	return sh.graph().MovePoint(args[0], x, y)
}

func (sh *shell) cmdLink(args []string) error {
	ev, err := sh.session.Connect(args[0], args[1])
	if err != nil {
		return err
	}
	sh.printEvent(ev)

	return nil
}

// cmdDelete goes through the session so gesture state naming the point is dropped too.
func (sh *shell) cmdDelete(args []string) error {
	ev, err := sh.session.DeletePoint(args[0])
	if err != nil {
		return err
	}
	sh.printEvent(ev)

	return nil
}

func (sh *shell) cmdPath(args []string) error {
	route, err := sh.session.CalculatePath(args[0], args[1])
	if err != nil {
		fmt.Fprintln(sh.out, interaction.Explain(err))
		return nil
	}
	fmt.Fprintln(sh.out, route)

	return nil
}

func (sh *shell) cmdWeight(args []string) error {
	w, err := sh.graph().EdgeWeight(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(sh.out, strconv.FormatFloat(w, 'g', -1, 64))

	return nil
}

func (sh *shell) cmdPoints(_ []string) error {
	g := sh.graph()
	pts := g.AllPoints()
	for _, name := range g.Names() {
		p, ok := pts[name]
		if !ok {
			continue
		}
		fmt.Fprintf(sh.out, "%s: %s\n", name, formatPoint(p))
	}

	return nil
}

func (sh *shell) cmdEdges(_ []string) error {
	snap := sh.graph().Snapshot()
	for _, e := range snap.Edges {
		fmt.Fprintf(sh.out, "%s-%s %s\n", e.A, e.B,
			strconv.FormatFloat(snap.Weight(e.A, e.B), 'f', 3, 64))
	}

	return nil
}

func (sh *shell) cmdAdj(_ []string) error {
	sh.printAdjacency()
	return nil
}

// printAdjacency prints "name: [neighbors]" for every point in natural order.
func (sh *shell) printAdjacency() {
	snap := sh.graph().Snapshot()
	for _, name := range snap.Names {
		fmt.Fprintf(sh.out, "%s: %v\n", name, snap.Adjacency[name])
	}
}

func (sh *shell) cmdIslands(_ []string) error {
	for _, island := range bfs.Components(sh.graph()) {
		fmt.Fprintln(sh.out, island)
	}

	return nil
}

func (sh *shell) cmdStats(_ []string) error {
	st := sh.graph().Stats()
	fmt.Fprintf(sh.out, "points=%d edges=%d isolated=%d length=%s\n",
		st.PointCount, st.EdgeCount, st.IsolatedPoints,
		strconv.FormatFloat(st.TotalLength, 'f', 3, 64))

	return nil
}

func (sh *shell) cmdCheck(_ []string) error {
	if err := sh.graph().Check(); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "ok")

	return nil
}

func (sh *shell) cmdDump(_ []string) error {
	data, err := json.MarshalIndent(sh.graph().Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	_, err = fmt.Fprintln(sh.out, string(data))

	return err
}

// parseXY parses two finite float arguments.
func parseXY(args []string) (float64, float64, error) {
	x, err := parseCoord(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad x %q", errUsage, args[0])
	}
	y, err := parseCoord(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad y %q", errUsage, args[1])
	}

	return x, y, nil
}

// parseCoord accepts real numbers only; ParseFloat alone also takes "nan" and "inf".
func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errUsage
	}

	return v, nil
}

func formatPoint(p core.Point) string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}
