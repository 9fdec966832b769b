package disasm

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteListing writes a tabular listing of a ROM that is loaded at the given
// base address. Every pair of bytes is treated as an instruction word, a
// trailing odd byte is listed as data. Addresses that are targets of jumps or
// calls within the ROM get a label.
func WriteListing(w io.Writer, rom []byte, base uint16) error {
	labels := collectLabels(rom, base)

	tw := tabwriter.NewWriter(w, 8, 8, 1, ' ', 0)
	if _, err := fmt.Fprintln(tw, "label\taddr\topcode\tinstruction"); err != nil {
		return fmt.Errorf("writing listing header: %w", err)
	}

	for i := 0; i < len(rom); i += 2 {
		address := base + uint16(i)
		label := labels[address]

		var err error
		if i+1 < len(rom) {
			word := uint16(rom[i])<<8 | uint16(rom[i+1])
			_, err = fmt.Fprintf(tw, "%s\t%04X\t%04X\t%s\n", label, address, word, formatWithLabel(word, labels))
		} else {
			_, err = fmt.Fprintf(tw, "%s\t%04X\t%02X\t.byte $%02X\n", label, address, rom[i], rom[i])
		}
		if err != nil {
			return fmt.Errorf("writing listing line at %04X: %w", address, err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing listing: %w", err)
	}
	return nil
}

// collectLabels names the entry point and every in-ROM branch target. Targets
// between two listed instruction words stay unlabeled.
func collectLabels(rom []byte, base uint16) map[uint16]string {
	labels := map[uint16]string{}
	if len(rom) > 0 {
		labels[base] = "Start"
	}

	end := int(base) + len(rom)
	for i := 0; i+1 < len(rom); i += 2 {
		word := uint16(rom[i])<<8 | uint16(rom[i+1])
		target, ok := BranchTarget(word)
		if !ok || int(target) < int(base) || int(target) >= end || (target-base)%2 != 0 {
			continue
		}
		if _, exists := labels[target]; exists {
			continue
		}
		if IsCall(word) {
			labels[target] = fmt.Sprintf("_sub_%04X", target)
		} else {
			labels[target] = fmt.Sprintf("_label_%04X", target)
		}
	}
	return labels
}

// formatWithLabel formats an instruction word, using the label name of a
// branch target if one exists.
func formatWithLabel(word uint16, labels map[uint16]string) string {
	target, ok := BranchTarget(word)
	if !ok {
		return Format(word)
	}
	label, ok := labels[target]
	if !ok {
		return Format(word)
	}
	ins, _ := Decode(word)
	return fmt.Sprintf("%s %s", ins.Name, label)
}
