package cli

import "github.com/footprint-tools/platform-cli/internal/dispatchers"

var (
	ProjectFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--project", "-p"},
			ValueHint:   "project",
			Description: "The project ID or URL",
		},
		{
			Names:       []string{"--host"},
			ValueHint:   "host",
			Description: "The project's API hostname",
			Hidden:      true,
		},
	}

	EnvironmentFlags = append(ProjectFlags[:len(ProjectFlags):len(ProjectFlags)],
		dispatchers.FlagDescriptor{
			Names:       []string{"--environment", "-e"},
			ValueHint:   "environment",
			Description: "The environment ID. Use \".\" to select the project's default environment.",
		},
	)

	AppFlags = append(EnvironmentFlags[:len(EnvironmentFlags):len(EnvironmentFlags)],
		dispatchers.FlagDescriptor{
			Names:       []string{"--app", "-A"},
			ValueHint:   "app",
			Description: "The remote application name",
		},
		dispatchers.FlagDescriptor{
			Names:       []string{"--worker"},
			ValueHint:   "worker",
			Description: "A worker name",
		},
		dispatchers.FlagDescriptor{
			Names:       []string{"--instance", "-I"},
			ValueHint:   "instance",
			Description: "An instance ID",
		},
	)

	OrganizationFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--org", "-o"},
			ValueHint:   "org",
			Description: "The organization name (or ID)",
		},
	}

	TableFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--format"},
			ValueHint:   "format",
			Description: "The output format: table, csv, tsv, or plain",
		},
		{
			Names:       []string{"--columns", "-c"},
			ValueHint:   "columns",
			Description: "Columns to display",
		},
		{
			Names:       []string{"--no-header"},
			Description: "Do not output the table header",
		},
	}

	WaitFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--no-wait", "-W"},
			Description: "Do not wait for the operation to complete",
		},
		{
			Names:       []string{"--wait"},
			Description: "Wait for the operation to complete (default)",
		},
	}

	PipeFlag = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--pipe"},
			Description: "Output a simple list of IDs",
		},
	}

	ListFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--raw"},
			Description: "To output raw command list",
		},
		{
			Names:       []string{"--all"},
			Description: "Show all commands, including hidden ones",
		},
	}

	MultiFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--continue"},
			Description: "Continue running commands after one fails",
		},
	}

	CompletionFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--instructions"},
			Description: "Show how to install the script instead of printing it",
		},
	}
)

// flagSet joins groups of flags into one list.
func flagSet(groups ...[]dispatchers.FlagDescriptor) []dispatchers.FlagDescriptor {
	var out []dispatchers.FlagDescriptor
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
