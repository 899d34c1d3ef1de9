package replay

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cbodonnell/codewords/pkg/messages"
)

// Script is the ordered list of server messages sent to each connection.
type Script []*messages.Message

// LoadScript reads one JSON message per line. Blank lines and lines
// starting with # are skipped.
func LoadScript(r io.Reader) (Script, error) {
	var script Script
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), messages.MessageBufferSize)

	line := 0
	for scanner.Scan() {
		line++
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 || b[0] == '#' {
			continue
		}

		msg := &messages.Message{}
		if err := json.Unmarshal(b, msg); err != nil {
			return nil, fmt.Errorf("failed to parse line %d: %v", line, err)
		}
		if msg.Type == "" {
			return nil, fmt.Errorf("line %d has no message type", line)
		}
		script = append(script, msg)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %v", err)
	}

	return script, nil
}

// LoadScriptFile loads the script at path.
func LoadScriptFile(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %v", err)
	}
	defer f.Close()
	return LoadScript(f)
}
