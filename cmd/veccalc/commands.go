package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Faultbox/vecmath/internal/config"
	"github.com/Faultbox/vecmath/pkg/math"
)

// vectorOp describes one subcommand. A nil v3 or v4 means the operation is
// not defined for that dimension.
type vectorOp struct {
	use    string
	short  string
	nvec   int
	scalar bool

	v3 func(vs []*math.Vector3, s float64) result
	v4 func(vs []*math.Vector4, s float64) result
}

var vectorOps = []vectorOp{
	{
		use: "length V", short: "Print the magnitude of V", nvec: 1,
		v3: func(vs []*math.Vector3, _ float64) result { return scalarResult(vs[0].Length()) },
		v4: func(vs []*math.Vector4, _ float64) result { return scalarResult(vs[0].Length()) },
	},
	{
		use: "normalize V", short: "Scale V to unit length", nvec: 1,
		v3: func(vs []*math.Vector3, _ float64) result { return v3(vs[0].Normalize()) },
		v4: func(vs []*math.Vector4, _ float64) result { return v4(vs[0].Normalize()) },
	},
	{
		use: "negate V", short: "Flip the sign of every component", nvec: 1,
		v3: func(vs []*math.Vector3, _ float64) result { return v3(vs[0].Negate()) },
		v4: func(vs []*math.Vector4, _ float64) result { return v4(vs[0].Negate()) },
	},
	{
		use: "scale V S", short: "Multiply V by the scalar S", nvec: 1, scalar: true,
		v3: func(vs []*math.Vector3, s float64) result { return v3(vs[0].MultiplyScalar(s)) },
		v4: func(vs []*math.Vector4, s float64) result { return v4(vs[0].MultiplyScalar(s)) },
	},
	{
		use: "rescale V S", short: "Set the magnitude of a 3D vector to S", nvec: 1, scalar: true,
		v3: func(vs []*math.Vector3, s float64) result { return v3(vs[0].Rescale(s)) },
	},
	{
		use: "dot A B", short: "Print the dot product of A and B", nvec: 2,
		v3: func(vs []*math.Vector3, _ float64) result { return scalarResult(vs[0].Dot(vs[1])) },
		v4: func(vs []*math.Vector4, _ float64) result { return scalarResult(vs[0].Dot(vs[1])) },
	},
	{
		use: "add A B", short: "Print A + B", nvec: 2,
		v3: func(vs []*math.Vector3, _ float64) result { return v3(vs[0].Add(vs[1])) },
		v4: func(vs []*math.Vector4, _ float64) result { return v4(vs[0].Add(vs[1])) },
	},
	{
		use: "subtract A B", short: "Print A - B", nvec: 2,
		v3: func(vs []*math.Vector3, _ float64) result { return v3(vs[0].Subtract(vs[1])) },
		v4: func(vs []*math.Vector4, _ float64) result { return v4(vs[0].Subtract(vs[1])) },
	},
	{
		use: "angle A B", short: "Print the angle between two 3D vectors in degrees", nvec: 2,
		v3: func(vs []*math.Vector3, _ float64) result { return scalarResult(math.Angle3(vs[0], vs[1])) },
	},
	{
		use: "project A B", short: "Project A onto the direction of B", nvec: 2,
		v3: func(vs []*math.Vector3, _ float64) result { return v3(math.Project3(vs[0], vs[1])) },
		v4: func(vs []*math.Vector4, _ float64) result { return v4(math.Project4(vs[0], vs[1])) },
	},
}

func v3(v *math.Vector3) result { return vec3Result(v.X, v.Y, v.Z) }

func v4(v *math.Vector4) result { return vec4Result(v.X, v.Y, v.Z, v.W) }

func vectorCommands(a *app) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(vectorOps)+1)
	for _, op := range vectorOps {
		cmds = append(cmds, op.command(a))
	}
	return append(cmds, newFromToCmd(a))
}

func (op vectorOp) command(a *app) *cobra.Command {
	nargs := op.nvec
	if op.scalar {
		nargs++
	}
	return &cobra.Command{
		Use:   op.use,
		Short: op.short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := op.eval(args)
			if err != nil {
				return err
			}
			a.print(cmd, r)
			return nil
		},
	}
}

func (op vectorOp) eval(args []string) (result, error) {
	name := strings.Fields(op.use)[0]

	vs, err := parseVectors(args[:op.nvec])
	if err != nil {
		return nil, err
	}
	var s float64
	if op.scalar {
		if s, err = parseScalar(args[op.nvec]); err != nil {
			return nil, err
		}
	}

	if _, is4 := vs[0].(*math.Vector4); is4 {
		if op.v4 == nil {
			return nil, fmt.Errorf("%s is only defined for 3D vectors", name)
		}
		v4s, err := asVector4s(name, vs)
		if err != nil {
			return nil, err
		}
		return op.v4(v4s, s), nil
	}

	if op.v3 == nil {
		return nil, fmt.Errorf("%s is only defined for 4D vectors", name)
	}
	v3s, err := asVector3s(name, vs)
	if err != nil {
		return nil, err
	}
	return op.v3(v3s, s), nil
}

// newFromToCmd differs from the table ops: the 3D form reports mismatched
// operands and still computes, the 4D form rejects them.
func newFromToCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fromto FROM TO",
		Short: "Print the displacement TO - FROM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := evalFromTo(args)
			if err != nil {
				return err
			}
			a.print(cmd, r)
			return nil
		},
	}
}

func evalFromTo(args []string) (result, error) {
	vs, err := parseVectors(args)
	if err != nil {
		return nil, err
	}
	if _, is4 := vs[0].(*math.Vector4); is4 {
		v4s, err := asVector4s("fromto", vs)
		if err != nil {
			return nil, err
		}
		return v4(math.FromTo4(v4s[0], v4s[1])), nil
	}
	return v3(math.FromTo3(asPoint3(vs[0]), asPoint3(vs[1]))), nil
}

func newConfigCmd(a *app) *cobra.Command {
	var force bool

	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the veccalc config file",
		// Skips the root config load so a broken file can still be replaced.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(config.ConfigDir(), "config.yaml")
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg := config.Default()
			save := func() error { return cfg.SaveTo(path) }
			if len(args) == 0 {
				save = cfg.Save
			}
			if err := save(); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cfgCmd.AddCommand(initCmd)

	return cfgCmd
}

func (a *app) print(cmd *cobra.Command, r result) {
	fmt.Fprintln(cmd.OutOrStdout(), r.format(a.cfg.Output.Precision))
}
