package core

import (
	"context"
	"testing"
)

func TestRecordDiagnostic(t *testing.T) {
	tests := []struct {
		rec  Record
		want bool
	}{
		{Record{Stream: StreamStdout, Text: "hello"}, false},
		{Record{Stream: StreamStderr, Reason: ReasonBlank}, true},
		{Record{Stream: StreamStderr, Reason: ReasonOverlong}, true},
	}
	for _, tt := range tests {
		if got := tt.rec.Diagnostic(); got != tt.want {
			t.Errorf("Record{%s, %q}.Diagnostic() = %v, want %v", tt.rec.Stream, tt.rec.Reason, got, tt.want)
		}
	}
}

func TestSinkFunc(t *testing.T) {
	var got []Record
	var s Sink = SinkFunc(func(_ context.Context, rec Record) error {
		got = append(got, rec)
		return nil
	})
	if err := s.Emit(context.Background(), Record{Seq: 1, Text: "a"}); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Text != "a" {
		t.Errorf("recorded %v, want one record with text %q", got, "a")
	}
	if s.Name() != "func" {
		t.Errorf("Name() = %q, want %q", s.Name(), "func")
	}
}
