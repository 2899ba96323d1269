package level

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
	"github.com/lixenwraith/planet-offline/systems"
)

var (
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrMalformed     = errors.New("malformed record")
	ErrNoBeginMarker = errors.New("no begin marker")
)

// Opcode is the first token of a record
type Opcode string

const (
	OpSpawn  Opcode = "s"  // s,row,loc,type,tier,amount
	OpWait   Opcode = "w"  // w,row,seconds,s,row,loc,type,tier,amount
	OpPause  Opcode = "p"  // p,row,seconds
	OpUplink Opcode = "u"  // u,tx,ty,seconds
	OpCache  Opcode = "c"  // c,tx,ty,hp,reward
	OpGround Opcode = "g"  // g,tx,ty,tier
	OpText   Opcode = "t"  // t,tx,ty,text
	OpBegin  Opcode = "bl" // bl,row,level
	OpEnd    Opcode = "sl" // sl,row,level
)

// arity is the exact token count of each record, opcode included
var arity = map[Opcode]int{
	OpSpawn:  6,
	OpWait:   9,
	OpPause:  3,
	OpUplink: 4,
	OpCache:  5,
	OpGround: 4,
	OpText:   4,
	OpBegin:  3,
	OpEnd:    3,
}

// airType is the only enemy type token the script uses
const airType = "a"

// Record is one opcode record of a script
type Record struct {
	Index  int // Position in the script, for error messages
	Op     Opcode
	Tokens []string // Tokens after the opcode
}

func (r Record) String() string {
	return string(r.Op) + "," + strings.Join(r.Tokens, ",")
}

// Parse splits a script into records and checks opcodes and token counts
// Empty records, such as a trailing separator, are skipped
func Parse(script string) ([]Record, error) {
	var records []Record
	for i, raw := range strings.Split(script, "|") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		tokens := strings.Split(raw, ",")
		op := Opcode(tokens[0])
		n, ok := arity[op]
		if !ok {
			return nil, fmt.Errorf("record %d %q: %w", i, raw, ErrUnknownOpcode)
		}
		if op == OpText && len(tokens) > n {
			// Labels may contain commas
			tokens = append(tokens[:n-1], strings.Join(tokens[n-1:], ","))
		}
		if len(tokens) != n {
			return nil, fmt.Errorf("record %d %q: %d tokens, want %d: %w", i, raw, len(tokens), n, ErrMalformed)
		}
		records = append(records, Record{Index: i, Op: op, Tokens: tokens[1:]})
	}
	return records, nil
}

// Load parses script and populates the world with every fixture and marker
// It returns the number of levels, which is the highest begin marker; each level must have one
func Load(ctx *engine.GameContext, script string) (int, error) {
	records, err := Parse(script)
	if err != nil {
		return 0, err
	}

	levels := 0
	begins := map[int]bool{}
	for _, rec := range records {
		a, err := build(ctx, rec)
		if err != nil {
			return 0, fmt.Errorf("record %d %q: %w", rec.Index, rec, err)
		}
		if c := a.Control; c != nil && c.Action == components.ActionBeginLevel {
			begins[c.Level] = true
			levels = max(levels, c.Level)
		}
		ctx.World.Add(a)
	}

	if levels == 0 {
		return 0, ErrNoBeginMarker
	}
	for lvl := 1; lvl <= levels; lvl++ {
		if !begins[lvl] {
			return 0, fmt.Errorf("level %d: %w", lvl, ErrNoBeginMarker)
		}
	}
	return levels, nil
}

// BeginRow returns the map row of a level's begin marker
func BeginRow(w *engine.World, level int) (int, error) {
	a := w.Find(func(a *components.Actor) bool {
		return a.Control != nil && a.Control.Action == components.ActionBeginLevel && a.Control.Level == level
	})
	if a == nil {
		return 0, fmt.Errorf("level %d: %w", level, ErrNoBeginMarker)
	}
	return a.Ground.TY, nil
}

// BeginScroll returns the scroll offset that puts a level's begin marker at the bottom of the screen
func BeginScroll(w *engine.World, level int) (float64, error) {
	row, err := BeginRow(w, level)
	if err != nil {
		return 0, err
	}
	return float64(row * constants.TileHeight), nil
}

// build turns one record into an actor
func build(ctx *engine.GameContext, rec Record) (*components.Actor, error) {
	p := parser{tokens: rec.Tokens}
	switch rec.Op {
	case OpSpawn:
		row := p.num(0, 0)
		c := components.ControlState{Action: components.ActionSpawn}
		p.wave(&c, 1, 2, 3, 4)
		if p.err != nil {
			return nil, p.err
		}
		return systems.NewControl(ctx, row, c), nil

	case OpWait:
		row := p.num(0, 0)
		c := components.ControlState{Action: components.ActionWaitSpawn, WaitSeconds: p.num(1, 1)}
		p.wave(&c, 4, 5, 6, 7)
		if p.err != nil {
			return nil, p.err
		}
		return systems.NewControl(ctx, row, c), nil

	case OpPause:
		row := p.num(0, 0)
		secs := p.num(1, 1)
		if p.err != nil {
			return nil, p.err
		}
		return systems.NewControl(ctx, row, components.ControlState{Action: components.ActionPause, PauseSeconds: secs}), nil

	case OpUplink:
		tx, ty := p.num(0, 0), p.num(1, 0)
		secs := p.num(2, 1)
		if p.err != nil {
			return nil, p.err
		}
		return systems.NewPlug(ctx, tx, ty, secs), nil

	case OpCache:
		tx, ty := p.num(0, 0), p.num(1, 0)
		hp := p.num(2, 1)
		if p.err != nil {
			return nil, p.err
		}
		reward, err := components.ParseReward(p.tokens[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return systems.NewCache(ctx, tx, ty, hp, reward), nil

	case OpGround:
		tx, ty := p.num(0, 0), p.num(1, 0)
		tier := p.tier(2, constants.MaxTurretTier)
		if p.err != nil {
			return nil, p.err
		}
		return systems.NewTurret(ctx, tx, ty, tier), nil

	case OpText:
		tx, ty := p.num(0, 0), p.num(1, 0)
		if p.err != nil {
			return nil, p.err
		}
		return systems.NewGroundText(ctx, p.tokens[2], tx, ty), nil

	case OpBegin, OpEnd:
		row := p.num(0, 0)
		lvl := p.num(1, 1)
		if p.err != nil {
			return nil, p.err
		}
		action := components.ActionBeginLevel
		if rec.Op == OpEnd {
			action = components.ActionEndLevel
		}
		return systems.NewControl(ctx, row, components.ControlState{Action: action, Level: lvl}), nil
	}
	return nil, ErrUnknownOpcode
}

// parser decodes positional tokens, keeping the first error
type parser struct {
	tokens []string
	err    error
}

// num parses token i and requires it to be at least lo
func (p *parser) num(i, lo int) int {
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(p.tokens[i])
	if err != nil {
		p.err = fmt.Errorf("token %d %q: %w", i+1, p.tokens[i], ErrMalformed)
		return 0
	}
	if v < lo {
		p.err = fmt.Errorf("token %d %q below %d: %w", i+1, p.tokens[i], lo, ErrMalformed)
		return 0
	}
	return v
}

func (p *parser) tier(i, hi int) int {
	v := p.num(i, 1)
	if p.err == nil && v > hi {
		p.err = fmt.Errorf("token %d %q above %d: %w", i+1, p.tokens[i], hi, ErrMalformed)
	}
	return v
}

// wave decodes location, enemy type, tier and amount at the given token positions
func (p *parser) wave(c *components.ControlState, loc, typ, tier, amount int) {
	if p.err != nil {
		return
	}
	switch l := p.tokens[loc]; l {
	case "l", "r", "a", "c":
		c.Location = components.Location(l[0])
	default:
		p.err = fmt.Errorf("location %q: %w", l, ErrMalformed)
		return
	}
	if p.tokens[typ] != airType {
		p.err = fmt.Errorf("enemy type %q: %w", p.tokens[typ], ErrMalformed)
		return
	}
	c.Tier = p.tier(tier, constants.MaxAirTier)
	c.Amount = p.num(amount, 0)
}
