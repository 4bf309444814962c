// Command framegen is a thin driver around the translation-stage
// emitter: it wires a hard-coded demonstration system AST through an
// Emitter and writes the resulting Go source to stdout. Parsing real
// Frame source into an *ast.System is outside this module's scope (see
// SPEC_FULL.md section 2) -- a real frontend would replace buildDemoSystem
// with an actual parser/resolver pipeline feeding the same Emitter API.
package main

import (
	"fmt"
	"os"

	"github.com/anggasct/framegen/pkg/ast"
	"github.com/anggasct/framegen/pkg/comments"
	"github.com/anggasct/framegen/pkg/config"
	"github.com/anggasct/framegen/pkg/emitter"
	"github.com/anggasct/framegen/pkg/symtab"
)

func main() {
	system := buildDemoSystem()
	cfg := config.AllFeatures("framegen-demo")
	arcanium := symtab.BuildFromSystem(system, symtab.DefaultConfig())
	logger := emitter.NewLogger(emitter.LogInfo)

	em := emitter.New(cfg, arcanium, []comments.Token{
		{Kind: comments.SingleLine, Line: system.Line, Text: "generated by framegen"},
	}, logger)

	if err := em.Run(system); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if em.Diagnostics().HasErrors() {
		for _, msg := range em.Diagnostics().ErrorStrings() {
			fmt.Fprintln(os.Stderr, "error:", msg)
		}
		os.Exit(1)
	}

	fmt.Print(em.Code())
}

// buildDemoSystem assembles a minimal two-state traffic-light system used
// to exercise the emitter end to end until a real frontend is wired in.
func buildDemoSystem() *ast.System {
	return &ast.System{
		Name: "TrafficLight",
		Line: 1,
		Interface: &ast.InterfaceBlock{
			Methods: []ast.InterfaceMethod{
				{Name: "Next"},
			},
		},
		Machine: &ast.MachineBlock{
			States: []*ast.State{
				{
					Name: "Red",
					Line: 5,
					Handlers: []ast.EventHandler{
						{
							Message:     ast.MsgCustom,
							MessageName: "Next",
							Line:        6,
							Items: []ast.Node{
								&ast.TransitionStmt{
									Line: 7,
									Target: ast.StateContextTarget{
										Kind:      ast.TargetStateRef,
										StateName: "Green",
									},
								},
							},
						},
					},
				},
				{
					Name: "Green",
					Line: 10,
					Handlers: []ast.EventHandler{
						{
							Message:     ast.MsgCustom,
							MessageName: "Next",
							Line:        11,
							Items: []ast.Node{
								&ast.TransitionStmt{
									Line: 12,
									Target: ast.StateContextTarget{
										Kind:      ast.TargetStateRef,
										StateName: "Red",
									},
								},
							},
						},
					},
				},
			},
		},
	}
}
