package schedule

import (
	"errors"
	"strings"
	"testing"
)

const sampleExport = `Расписание занятий,,
,,
,,
Дата,Часы,ИГ25-01Б-ОМ
01.02,8:00-9:35,"Math
пр"
,9:45-11:20,Physics
,,
02.02,8:00-9:35,Chemistry
`

func TestScheduleTextScenario(t *testing.T) {
	x := New(Heuristics{})
	got, err := x.ScheduleText(sampleExport, "ИГ25-01Б-ОМ", "01.02")
	if err != nil {
		t.Fatalf("ScheduleText: %v", err)
	}
	want := strings.Join([]string{
		"ИГ25-01Б-ОМ — 01.02:",
		"• 8:00–9:35 — Math пр",
		"",
		"• 9:45–11:20 — Physics",
	}, "\n")
	if got != want {
		t.Fatalf("ScheduleText =\n%s\nwant:\n%s", got, want)
	}
}

func TestExtractCarryForward(t *testing.T) {
	// The second row carries no date and no time; both are inherited from the
	// first row of the block.
	text := strings.Join([]string{
		"Дата,Часы,ИГ25-01Б-ОМ",
		"01.02,8:00-9:35,Math",
		",,Physics",
		"02.02,8:00-9:35,Chemistry",
	}, "\n")
	x := New(Heuristics{})
	entries, err := x.Extract(text, "ИГ25-01Б-ОМ", "01.02")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %v, want one slot", entries)
	}
	if entries[0].Time != "8:00–9:35" {
		t.Fatalf("time = %q", entries[0].Time)
	}
	if len(entries[0].Lines) != 2 || entries[0].Lines[1] != "Physics" {
		t.Fatalf("lines = %v", entries[0].Lines)
	}
}

func TestExtractCarryForwardAcrossSkippedDates(t *testing.T) {
	// Carried state updates on rows belonging to other dates too: the row for
	// 02.02 inherits its time from the block that started under 01.02.
	text := strings.Join([]string{
		"Дата,Часы,ИГ25-01Б-ОМ",
		"01.02,8:00-9:35,Math",
		"02.02,,Chemistry",
	}, "\n")
	x := New(Heuristics{})
	entries, err := x.Extract(text, "ИГ25-01Б-ОМ", "02.02")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(entries) != 1 || entries[0].Time != "8:00–9:35" || entries[0].Lines[0] != "Chemistry" {
		t.Fatalf("entries = %v", entries)
	}
}

func TestExtractPlaceholderForEmptySlot(t *testing.T) {
	text := strings.Join([]string{
		"Дата,Часы,ИГ25-01Б-ОМ",
		"01.02,8:00-9:35,",
		",9:45-11:20,Physics",
	}, "\n")
	x := New(Heuristics{})
	entries, err := x.Extract(text, "ИГ25-01Б-ОМ", "01.02")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %v", entries)
	}
	if entries[0].Lines[0] != "нет пары" {
		t.Fatalf("expected placeholder slot, got %v", entries[0])
	}
	if entries[1].Lines[0] != "Physics" {
		t.Fatalf("entries[1] = %v", entries[1])
	}
}

func TestExtractNoRowsForDate(t *testing.T) {
	x := New(Heuristics{})
	got, err := x.ScheduleText(sampleExport, "ИГ25-01Б-ОМ", "05.02")
	if err != nil {
		t.Fatalf("ScheduleText: %v", err)
	}
	want := "ИГ25-01Б-ОМ — 05.02:\nнет пар"
	if got != want {
		t.Fatalf("ScheduleText = %q, want %q", got, want)
	}
}

func TestExtractRowWithoutTimeSkipped(t *testing.T) {
	// A row before any time token cannot be attributed to a slot.
	text := strings.Join([]string{
		"Дата,Часы,ИГ25-01Б-ОМ",
		"01.02,,Orphan",
		",8:00-9:35,Math",
	}, "\n")
	x := New(Heuristics{})
	entries, err := x.Extract(text, "ИГ25-01Б-ОМ", "01.02")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(entries) != 1 || entries[0].Lines[0] != "Math" {
		t.Fatalf("entries = %v", entries)
	}
}

func TestExtractOverlappingGroupColumns(t *testing.T) {
	// The same block picked up from two columns of the group collapses to one
	// entry.
	text := strings.Join([]string{
		"Дата,Часы,ИГ25-01Б-ОМ,ИГ25-01Б-ОМ",
		"01.02,8:00-9:35,Math,Math",
	}, "\n")
	x := New(Heuristics{})
	entries, err := x.Extract(text, "ИГ25-01Б-ОМ", "01.02")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := []string{"Math"}
	if len(entries) != 1 || len(entries[0].Lines) != 1 || entries[0].Lines[0] != want[0] {
		t.Fatalf("entries = %v", entries)
	}
}

func TestExtractGroupNotFound(t *testing.T) {
	x := New(Heuristics{})
	_, err := x.Extract(sampleExport, "ИГ25-09Б-ОМ", "01.02")
	var gnf *GroupNotFoundError
	if !errors.As(err, &gnf) {
		t.Fatalf("expected GroupNotFoundError, got %v", err)
	}
	if len(gnf.Siblings) == 0 {
		t.Fatalf("expected sibling hint, got none")
	}
}

func TestExtractSemicolonDelimiter(t *testing.T) {
	text := strings.Join([]string{
		"Дата;Часы;ИГ25-01Б-ОМ",
		"01.02;8:00-9:35;Math",
	}, "\n")
	x := New(Heuristics{})
	got, err := x.ScheduleText(text, "ИГ25-01Б-ОМ", "01.02")
	if err != nil {
		t.Fatalf("ScheduleText: %v", err)
	}
	if got != "ИГ25-01Б-ОМ — 01.02:\n• 8:00–9:35 — Math" {
		t.Fatalf("ScheduleText = %q", got)
	}
}
