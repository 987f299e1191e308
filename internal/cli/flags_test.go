package cli

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestBooleanFlagValueLiterals(t *testing.T) {
	testCases := []struct {
		name      string
		arguments []string
		expected  bool
		wantError bool
	}{
		{name: "absent_uses_default", arguments: nil, expected: false},
		{name: "bare_flag", arguments: []string{"--sizes"}, expected: true},
		{name: "yes_literal", arguments: []string{"--sizes=yes"}, expected: true},
		{name: "off_literal", arguments: []string{"--sizes=OFF"}, expected: false},
		{name: "numeric_literal", arguments: []string{"--sizes=1"}, expected: true},
		{name: "invalid_literal", arguments: []string{"--sizes=maybe"}, wantError: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
			var target bool
			registerBooleanFlag(flagSet, &target, "sizes", false, "usage")
			parseError := flagSet.Parse(testCase.arguments)
			if testCase.wantError {
				if parseError == nil {
					t.Fatalf("expected error for %v", testCase.arguments)
				}
				return
			}
			if parseError != nil {
				t.Fatalf("parse %v: %v", testCase.arguments, parseError)
			}
			if target != testCase.expected {
				t.Fatalf("expected %v, got %v", testCase.expected, target)
			}
		})
	}
}

func TestDepthFlagValue(t *testing.T) {
	testCases := []struct {
		name      string
		arguments []string
		expected  *int
		wantError bool
	}{
		{name: "absent_is_unlimited", arguments: nil, expected: nil},
		{name: "zero", arguments: []string{"--depth", "0"}, expected: intPointer(0)},
		{name: "positive", arguments: []string{"--depth=3"}, expected: intPointer(3)},
		{name: "unlimited_literal", arguments: []string{"--depth", "Unlimited"}, expected: nil},
		{name: "minus_one", arguments: []string{"--depth=-1"}, expected: nil},
		{name: "negative", arguments: []string{"--depth=-4"}, wantError: true},
		{name: "not_a_number", arguments: []string{"--depth", "deep"}, wantError: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
			var target *int
			registerDepthFlag(flagSet, &target, "depth", "usage")
			parseError := flagSet.Parse(testCase.arguments)
			if testCase.wantError {
				if parseError == nil {
					t.Fatalf("expected error for %v", testCase.arguments)
				}
				return
			}
			if parseError != nil {
				t.Fatalf("parse %v: %v", testCase.arguments, parseError)
			}
			if !reflect.DeepEqual(target, testCase.expected) {
				t.Fatalf("expected %v, got %v", describeDepth(testCase.expected), describeDepth(target))
			}
		})
	}
}

func TestNormalizeBooleanFlagArguments(t *testing.T) {
	rootCommand := &cobra.Command{Use: "root"}
	childCommand := &cobra.Command{Use: "tree"}
	var copyEnabled bool
	var format string
	registerBooleanFlag(childCommand.Flags(), &copyEnabled, "copy", false, "usage")
	childCommand.Flags().StringVar(&format, "format", "", "usage")
	rootCommand.AddCommand(childCommand)

	testCases := []struct {
		name      string
		arguments []string
		expected  []string
	}{
		{name: "joins_literal", arguments: []string{"tree", "--copy", "false", "."}, expected: []string{"tree", "--copy=false", "."}},
		{name: "keeps_path", arguments: []string{"tree", "--copy", "./src"}, expected: []string{"tree", "--copy", "./src"}},
		{name: "ignores_non_boolean", arguments: []string{"tree", "--format", "yes"}, expected: []string{"tree", "--format", "yes"}},
		{name: "stops_at_terminator", arguments: []string{"tree", "--", "--copy", "no"}, expected: []string{"tree", "--", "--copy", "no"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := normalizeBooleanFlagArguments(rootCommand, testCase.arguments)
			if !reflect.DeepEqual(actual, testCase.expected) {
				t.Fatalf("expected %q, got %q", testCase.expected, actual)
			}
		})
	}
}

func intPointer(value int) *int {
	return &value
}

func describeDepth(value *int) string {
	if value == nil {
		return depthUnlimitedLiteral
	}
	return strconv.Itoa(*value)
}
