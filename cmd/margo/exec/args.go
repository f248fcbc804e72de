package exec

const argSeparator = "--"

// Args splits command arguments between the host and the guest.
// Arguments are meant for the exec command (host process) by default;
// everything after a "--" delimiter is handed to the guest untouched.
// E.g. `margo exec guest.wasm -- guest-arg1 guest-arg2` passes
// guest-arg1 and guest-arg2 to the guest process.
type Args struct {
	Host  []string
	Guest []string
}

// ParseArgs builds an Args struct.  Both slices are always non-nil.
func ParseArgs(args []string) Args {
	host := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == argSeparator {
			return Args{
				Host:  host,
				Guest: append([]string{}, args[i+1:]...),
			}
		}
		host = append(host, arg)
	}

	return Args{
		Host:  host,
		Guest: []string{},
	}
}
