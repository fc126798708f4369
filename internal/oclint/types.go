package oclint

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// Type is the sonar issue type a rule reports as.
type Type int

const (
	TYPE_CODE_SMELL Type = iota
	TYPE_BUG
	TYPE_VULNERABILITY
)

func (t Type) String() string {
	switch t {
	case TYPE_BUG:
		return "BUG"
	case TYPE_VULNERABILITY:
		return "VULNERABILITY"
	default:
		return "CODE_SMELL"
	}
}

// ruleTypes maps rule keys to their type, anything absent is a code smell.
var ruleTypes = map[string]Type{
	// Basic
	"bitwise operator in conditional":    TYPE_CODE_SMELL,
	"broken null check":                  TYPE_VULNERABILITY,
	"broken nil check":                   TYPE_VULNERABILITY,
	"broken oddness check":               TYPE_BUG,
	"collapsible if statements":          TYPE_CODE_SMELL,
	"constant conditional operator":      TYPE_BUG,
	"constant if expression":             TYPE_CODE_SMELL,
	"dead code":                          TYPE_CODE_SMELL,
	"double negative":                    TYPE_BUG,
	"for loop should be while loop":      TYPE_CODE_SMELL,
	"goto statement":                     TYPE_CODE_SMELL,
	"jumbled incrementer":                TYPE_BUG,
	"misplaced null check":               TYPE_VULNERABILITY,
	"misplaced nil check":                TYPE_VULNERABILITY,
	"multiple unary operator":            TYPE_CODE_SMELL,
	"return from finally block":          TYPE_VULNERABILITY,
	"throw exception from finally block": TYPE_VULNERABILITY,

	// Cocoa
	"missing hash method":                    TYPE_BUG,
	"missing call to base method":            TYPE_BUG,
	"calling prohibited method":              TYPE_CODE_SMELL,
	"calling protected method":               TYPE_CODE_SMELL,
	"missing abstract method implementation": TYPE_CODE_SMELL,

	// Convention
	"avoid branching statement as last in loop":                 TYPE_CODE_SMELL,
	"base class destructor should be virtual or protected":      TYPE_BUG,
	"unnecessary default statement in covered switch statement": TYPE_CODE_SMELL,
	"ill-placed default label in switch statement":              TYPE_BUG,
	"destructor of virtual class":                               TYPE_CODE_SMELL,
	"inverted logic":                                            TYPE_CODE_SMELL,
	"missing break in switch statement":                         TYPE_BUG,
	"non case label in switch statement":                        TYPE_CODE_SMELL,
	"ivar assignment outside accessors or init":                 TYPE_CODE_SMELL,
	"parameter reassignment":                                    TYPE_CODE_SMELL,
	"prefer early exits and continue":                           TYPE_CODE_SMELL,
	"missing default in switch statements":                      TYPE_CODE_SMELL,
	"too few branches in switch statement":                      TYPE_CODE_SMELL,

	// Design
	"avoid default arguments on virtual methods": TYPE_CODE_SMELL,
	"avoid private static members":               TYPE_CODE_SMELL,

	// Empty
	"empty catch statement":    TYPE_CODE_SMELL,
	"empty do/while statement": TYPE_CODE_SMELL,
	"empty else block":         TYPE_CODE_SMELL,
	"empty finally statement":  TYPE_CODE_SMELL,
	"empty for statement":      TYPE_CODE_SMELL,
	"empty if statement":       TYPE_CODE_SMELL,
	"empty switch statement":   TYPE_CODE_SMELL,
	"empty try statement":      TYPE_CODE_SMELL,
	"empty while statement":    TYPE_CODE_SMELL,

	// Migration
	"use boxed expression":    TYPE_CODE_SMELL,
	"use container literal":   TYPE_CODE_SMELL,
	"use number literal":      TYPE_CODE_SMELL,
	"use object subscripting": TYPE_CODE_SMELL,

	// Naming
	"long variable name":  TYPE_CODE_SMELL,
	"short variable name": TYPE_CODE_SMELL,

	// Redundant
	"redundant conditional operator":     TYPE_CODE_SMELL,
	"redundant if statement":             TYPE_CODE_SMELL,
	"redundant local variable":           TYPE_CODE_SMELL,
	"redundant nil check":                TYPE_CODE_SMELL,
	"unnecessary else statement":         TYPE_CODE_SMELL,
	"unnecessary null check for dealloc": TYPE_CODE_SMELL,
	"useless parentheses":                TYPE_CODE_SMELL,

	// Size
	"high cyclomatic complexity": TYPE_CODE_SMELL,
	"long class":                 TYPE_CODE_SMELL,
	"long line":                  TYPE_CODE_SMELL,
	"long method":                TYPE_CODE_SMELL,
	"high ncss method":           TYPE_CODE_SMELL,
	"deep nested block":          TYPE_CODE_SMELL,
	"high npath complexity":      TYPE_CODE_SMELL,
	"too many fields":            TYPE_CODE_SMELL,
	"too many methods":           TYPE_CODE_SMELL,
	"too many parameters":        TYPE_CODE_SMELL,

	// Unused
	"unused local variable":   TYPE_CODE_SMELL,
	"unused method parameter": TYPE_CODE_SMELL,
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// TypeOf returns the type for a rule key, defaulting to TYPE_CODE_SMELL.
func TypeOf(key string) Type {
	t, _ := LookupType(key)
	return t
}

// LookupType is TypeOf but also reports whether the key has an explicit entry.
func LookupType(key string) (Type, bool) {
	t, ok := ruleTypes[normalizeKey(key)]
	if !ok {
		return TYPE_CODE_SMELL, false
	}
	return t, true
}

// ClosestKnownRule finds the mapped rule key most similar to `key`, this is
// mostly useful for catching rules that were renamed upstream.
func ClosestKnownRule(key string) (string, float64) {
	key = normalizeKey(key)

	var closest string
	var similarity float64
	for known := range ruleTypes {
		s := matchr.JaroWinkler(key, known, false)
		if s > similarity || (s == similarity && known < closest) {
			similarity = s
			closest = known
		}
	}
	return closest, similarity
}
