package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rusenback/sysmon/internal/system"
)

// Process table column offsets
const (
	pidColumn     = 2
	userColumn    = 9
	cpuColumn     = 20
	ramColumn     = 30
	timeColumn    = 40
	commandColumn = 50
)

// summaryHeight is the number of lines above the first process row: a
// blank line, OS, kernel, one bar per core, memory, three counters, a
// blank line and the table header.
func summaryHeight(cores int) int {
	return cores + 9
}

// footerHeight covers the status bar and the help line
const footerHeight = 2

// pageSize is the number of process rows that fit in the viewport
func pageSize(height, cores int) int {
	return max(0, height-summaryHeight(cores)-footerHeight)
}

// renderSummary renders the system block
func renderSummary(s summary) []string {
	lines := []string{
		"",
		"  " + labelStyle.Render("OS:") + " " + s.os,
		"  " + labelStyle.Render("Kernel:") + " " + s.kernel,
	}

	for i, u := range s.cores {
		caption := fmt.Sprintf("  %-8s", fmt.Sprintf("CPU %d:", i+1))
		lines = append(lines, caption+cpuBarStyle.Render(utilizationBar(u)))
	}
	lines = append(lines,
		fmt.Sprintf("  %-8s", "Memory:")+memBarStyle.Render(utilizationBar(s.memory)),
		"  "+labelStyle.Render("Total Processes:")+" "+strconv.Itoa(s.total),
		"  "+labelStyle.Render("Running Processes:")+" "+strconv.Itoa(s.running),
		"  "+labelStyle.Render("Up Time:")+" "+formatElapsed(s.uptime),
		"",
	)
	return lines
}

// tableHeader returns the column captions laid out on the column grid
func tableHeader() string {
	return placeColumns("PID", "USER", "CPU[%]", "RAM[MB]", "TIME+", "COMMAND")
}

// processRow lays out one record on the column grid; the command is
// clipped to whatever is left of the viewport
func processRow(p system.ProcessRecord, width int) string {
	command := p.Command()
	if width > 0 {
		command = truncate(command, width-commandColumn)
	}
	return placeColumns(
		strconv.Itoa(int(p.Pid())),
		p.Owner(),
		formatCPU(p.CPUUtilization()),
		strconv.FormatUint(p.ResidentMB(), 10),
		formatElapsed(p.ElapsedSeconds()),
		command,
	)
}

// placeColumns writes each field at its column start. A field that runs
// into the next column is cut one cell short of it.
func placeColumns(pid, user, cpu, ram, elapsed, command string) string {
	starts := []int{pidColumn, userColumn, cpuColumn, ramColumn, timeColumn, commandColumn}
	fields := []string{pid, user, cpu, ram, elapsed, command}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", pidColumn))
	for i, f := range fields {
		if i == len(fields)-1 {
			b.WriteString(f)
			break
		}
		span := starts[i+1] - starts[i]
		b.WriteString(fitWidth(truncate(f, span-1), span))
	}
	return b.String()
}
