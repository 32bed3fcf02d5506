package core

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	incPattern = regexp.MustCompile(`^R(\d+)\+=>(\d+)$`)
	decPattern = regexp.MustCompile(`^R(\d+)-=>(\d+),(\d+)$`)
)

// ParseInstruction parses `R<i>+=><n>` into an Inc and `R<i>-=><n>,<m>`
// into a Dec. Surrounding whitespace is ignored.
func ParseInstruction(text string) (Instruction, error) {
	s := strings.TrimSpace(text)

	if m := incPattern.FindStringSubmatch(s); m != nil {
		nums, ok := atois(m[1:])
		if !ok {
			return nil, &ParseError{Text: text}
		}
		return Inc{Reg: nums[0], Next: Label(nums[1])}, nil
	}

	if m := decPattern.FindStringSubmatch(s); m != nil {
		nums, ok := atois(m[1:])
		if !ok {
			return nil, &ParseError{Text: text}
		}
		return Dec{Reg: nums[0], Next: Label(nums[1]), Else: Label(nums[2])}, nil
	}

	return nil, &ParseError{Text: text}
}

func atois(fields []string) ([]int, bool) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}

	return out, true
}

// ParseProgram parses one instruction per line. Blank lines and lines
// starting with '#' are skipped; they do not take an address.
func ParseProgram(text string) (Program, error) {
	var insts []Instruction

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		inst, err := ParseInstruction(line)
		if err != nil {
			return Program{}, &ParseError{Line: lineNo, Text: line}
		}
		insts = append(insts, inst)
	}

	if err := scanner.Err(); err != nil {
		return Program{}, fmt.Errorf("reading program text: %w", err)
	}

	return NewProgram(insts...)
}

type programFile struct {
	Programs map[string][]string `yaml:"programs"`
}

// LoadProgramFileFromYAML reads a file of the form
//
//	programs:
//	  add:
//	    - R2-=>2,...
//
// and returns the programs indexed by name.
func LoadProgramFileFromYAML(filePath string) (map[string]Program, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read program file: %w", err)
	}

	return ParseProgramFileYAML(data)
}

// ParseProgramFileYAML decodes the document format read by
// LoadProgramFileFromYAML.
func ParseProgramFileYAML(data []byte) (map[string]Program, error) {
	var pf programFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to decode program file: %w", err)
	}

	programs := make(map[string]Program, len(pf.Programs))
	for name, lines := range pf.Programs {
		prog, err := ParseProgram(strings.Join(lines, "\n"))
		if err != nil {
			return nil, fmt.Errorf("program %q: %w", name, err)
		}
		programs[name] = prog
	}

	return programs, nil
}

// MarshalProgramFileYAML encodes programs in the format read by
// ParseProgramFileYAML. Names are written in sorted order.
func MarshalProgramFileYAML(programs map[string]Program) ([]byte, error) {
	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}
	sort.Strings(names)

	progs := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range names {
		lines := &yaml.Node{Kind: yaml.SequenceNode}
		for _, inst := range programs[name].insts {
			lines.Content = append(lines.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: inst.String()})
		}
		progs.Content = append(progs.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name}, lines)
	}

	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "programs"}, progs,
	}}

	return yaml.Marshal(doc)
}

// WriteProgramFileYAML writes programs to filePath in the format read by
// LoadProgramFileFromYAML.
func WriteProgramFileYAML(filePath string, programs map[string]Program) error {
	data, err := MarshalProgramFileYAML(programs)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write program file: %w", err)
	}

	return nil
}

// ValidateInputs rejects negative register values. inputs[i] is the value
// of register i+1.
func ValidateInputs(inputs []int) error {
	for i, v := range inputs {
		if v < 0 {
			return &ValidationError{Register: i + 1, Value: strconv.Itoa(v)}
		}
	}

	return nil
}

// ParseInputs converts textual register values, rejecting anything that
// is not a non-negative integer.
func ParseInputs(fields []string) ([]int, error) {
	inputs := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || v < 0 {
			return nil, &ValidationError{Register: i + 1, Value: f}
		}
		inputs[i] = v
	}

	return inputs, nil
}
