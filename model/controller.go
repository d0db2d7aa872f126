package model

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrUnknownTerrain   = errors.New("unknown terrain")
)

type CommandKind int

const (
	CMD_EDIT CommandKind = iota + 1
	CMD_RUN
	CMD_RESET
)

func (k CommandKind) Name() string {
	switch k {
	case CMD_EDIT:
		return "EDIT"
	case CMD_RUN:
		return "RUN"
	case CMD_RESET:
		return "RESET"
	default:
		return fmt.Sprintf("N/A(%d)", k)
	}
}

type Terrain int

const (
	TERRAIN_WALL Terrain = iota + 1
	TERRAIN_MUD
)

func (t Terrain) Name() string {
	switch t {
	case TERRAIN_WALL:
		return "WALL"
	case TERRAIN_MUD:
		return "MUD"
	default:
		return fmt.Sprintf("N/A(%d)", t)
	}
}

// Command is one request from the input side. Only the fields of its Kind
// are meaningful.
type Command struct {
	Kind      CommandKind
	Terrain   Terrain
	Col, Row  int
	Algorithm Algorithm
}

func EditTerrain(t Terrain, col, row int) Command {
	return Command{Kind: CMD_EDIT, Terrain: t, Col: col, Row: row}
}

func Run(a Algorithm) Command {
	return Command{Kind: CMD_RUN, Algorithm: a}
}

func FullReset() Command {
	return Command{Kind: CMD_RESET}
}

// Controller applies commands to the model it owns. It is not safe for
// concurrent use; whoever owns it serialises the commands.
type Controller struct {
	Model *Model
	log   *log.Entry
}

func NewController() *Controller {
	return &Controller{
		Model: NewModel(),
		log:   log.WithField("component", "controller"),
	}
}

// Apply executes a single command. Edits outside the board or on the start
// and end cells are ignored. Errors only come from malformed commands.
func (c *Controller) Apply(cmd Command) error {
	switch cmd.Kind {
	case CMD_EDIT:
		switch cmd.Terrain {
		case TERRAIN_WALL:
			c.Model.SetWall(cmd.Col, cmd.Row)
		case TERRAIN_MUD:
			c.Model.SetMud(cmd.Col, cmd.Row)
		default:
			return fmt.Errorf("edit %d,%d: %w %d", cmd.Col, cmd.Row, ErrUnknownTerrain, cmd.Terrain)
		}
	case CMD_RUN:
		return c.run(cmd.Algorithm)
	case CMD_RESET:
		c.Model.FullReset()
		c.log.Debug("full reset")
	default:
		return fmt.Errorf("%w %d", ErrUnknownCommand, cmd.Kind)
	}
	return nil
}

func (c *Controller) run(alg Algorithm) error {
	var metrics RunMetrics
	switch alg {
	case DIJKSTRA:
		c.Model.PartialReset()
		metrics = c.Model.RunDijkstra().RunMetrics
	case BFS:
		c.Model.PartialReset()
		metrics = c.Model.RunBFS().RunMetrics
	default:
		return fmt.Errorf("run: %w %d", ErrUnknownAlgorithm, alg)
	}
	c.log.WithFields(log.Fields{
		"algorithm": alg.Name(),
		"found":     metrics.Found,
		"visited":   metrics.Visited,
		"elapsed":   metrics.Elapsed,
	}).Debug("search finished")
	return nil
}

// Snapshot is the render model of the owned model.
func (c *Controller) Snapshot() RenderModel {
	return c.Model.Snapshot()
}
