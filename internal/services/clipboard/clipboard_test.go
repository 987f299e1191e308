package clipboard

import (
	"errors"
	"testing"
)

func TestServiceCopy(t *testing.T) {
	failure := errors.New("no display")
	testCases := []struct {
		name        string
		unsupported bool
		writeError  error
		expectError error
		expectText  string
	}{
		{name: "copies_text", expectText: "tree"},
		{name: "unsupported", unsupported: true, expectError: ErrUnsupported},
		{name: "write_failure", writeError: failure, expectError: failure, expectText: "tree"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var copied string
			service := &Service{
				writeAll: func(text string) error {
					copied = text
					return testCase.writeError
				},
				unsupported: func() bool { return testCase.unsupported },
			}
			copyError := service.Copy("tree")
			if testCase.expectError == nil && copyError != nil {
				t.Fatalf("unexpected error: %v", copyError)
			}
			if testCase.expectError != nil && !errors.Is(copyError, testCase.expectError) {
				t.Fatalf("expected %v, got %v", testCase.expectError, copyError)
			}
			if copied != testCase.expectText {
				t.Fatalf("expected copied text %q, got %q", testCase.expectText, copied)
			}
		})
	}
}
