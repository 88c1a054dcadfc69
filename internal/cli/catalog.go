package cli

import "github.com/footprint-tools/platform-cli/internal/dispatchers"

// apiCommand describes a command that is implemented by the API client.
type apiCommand struct {
	name    string
	aliases []string
	summary string
	args    []dispatchers.ArgSpec
	flags   []dispatchers.FlagDescriptor
	hidden  bool
}

func alias(names ...string) []string { return names }

var (
	projectTable = flagSet(ProjectFlags, TableFlags)
	envTable     = flagSet(EnvironmentFlags, TableFlags)
	appTable     = flagSet(AppFlags, TableFlags)
	envWait      = flagSet(EnvironmentFlags, WaitFlags)
	projectWait  = flagSet(ProjectFlags, WaitFlags)
	orgTable     = flagSet(OrganizationFlags, TableFlags)
)

// The API command tables are split where built-in commands sit in the
// registration order; BuildRegistry interleaves them.
var apiHead = []apiCommand{
	{name: "api:curl", summary: "Run an authenticated cURL request on the Platform.sh API", args: optional("path", "The API path")},
	{name: "bot", summary: "The Platform.sh Bot", hidden: true},
}

var apiDecodeDocs = []apiCommand{
	{name: "decode", summary: "Decode an encoded string such as PLATFORM_VARIABLES", args: required("value", "The variable value to decode")},
	{name: "docs", summary: "Open the online documentation", args: rest("search", "Search term(s)")},
	{name: "legacy-migrate", summary: "Migrate from the legacy file structure", hidden: true},
}

var apiCatalog = []apiCommand{
	{name: "activity:cancel", summary: "Cancel an activity", args: optional("id", "The activity ID. Defaults to the most recent cancellable activity."), flags: EnvironmentFlags},
	{name: "activity:get", summary: "View detailed information on a single activity", args: optional("id", "The activity ID. Defaults to the most recent activity."), flags: EnvironmentFlags},
	{name: "activity:list", aliases: alias("activities", "act"), summary: "Get a list of activities for an environment or project", flags: envTable},
	{name: "activity:log", summary: "Display the log for an activity", args: optional("id", "The activity ID. Defaults to the most recent activity."), flags: EnvironmentFlags},

	{name: "app:config-get", summary: "View the configuration of an app", flags: AppFlags},
	{name: "app:list", aliases: alias("apps"), summary: "List apps in the project", flags: envTable},

	{name: "auth:info", summary: "Display your account information", args: optional("property", "The account property to view")},
	{name: "auth:token", summary: "Obtain an OAuth 2 access token for requests to Platform.sh APIs", hidden: true},
	{name: "auth:logout", aliases: alias("logout"), summary: "Log out of Platform.sh"},
	{name: "auth:api-token-login", summary: "Log in to Platform.sh using an API token"},
	{name: "auth:browser-login", aliases: alias("login"), summary: "Log in to Platform.sh via a browser"},
	{name: "auth:verify-phone-number", summary: "Verify your phone number interactively"},

	{name: "blue-green:conclude", summary: "Conclude a blue/green deployment", flags: envWait},
	{name: "blue-green:deploy", summary: "Perform a blue/green deployment", flags: envWait},
	{name: "blue-green:enable", summary: "Enable blue/green deployments", flags: envWait},

	{name: "certificate:add", summary: "Add an SSL certificate to the project", flags: projectWait},
	{name: "certificate:delete", summary: "Delete a certificate from the project", args: required("id", "The certificate ID (or the start of it)"), flags: projectWait},
	{name: "certificate:get", summary: "View a certificate", args: required("id", "The certificate ID (or the start of it)"), flags: ProjectFlags},
	{name: "certificate:list", aliases: alias("certificates", "certs"), summary: "List project certificates", flags: projectTable},

	{name: "commit:get", summary: "Show commit details", args: optional("commit", "The commit SHA"), flags: EnvironmentFlags},
	{name: "commit:list", aliases: alias("commits"), summary: "List commits", args: optional("commit", "The starting commit"), flags: envTable},

	{name: "db:sql", aliases: alias("sql"), summary: "Run SQL on the remote database", args: optional("query", "An SQL statement to execute"), flags: AppFlags},
	{name: "db:dump", summary: "Create a local dump of the remote database", flags: AppFlags},
	{name: "db:size", summary: "Estimate the disk usage of a database", flags: AppFlags},

	{name: "domain:add", summary: "Add a new domain to the project", args: required("name", "The domain name"), flags: projectWait},
	{name: "domain:delete", summary: "Delete a domain from the project", args: required("name", "The domain name"), flags: projectWait},
	{name: "domain:get", summary: "Show detailed information for a domain", args: optional("name", "The domain name"), flags: ProjectFlags},
	{name: "domain:list", aliases: alias("domains"), summary: "Get a list of all domains", flags: envTable},
	{name: "domain:update", summary: "Update a domain", args: required("name", "The domain name"), flags: projectWait},

	{name: "environment:activate", summary: "Activate an environment", args: rest("environment", "The environment(s) to activate"), flags: envWait},
	{name: "environment:branch", aliases: alias("branch"), summary: "Branch an environment", args: pair("id", "The ID (branch name) of the new environment", "parent", "The parent of the new environment"), flags: envWait},
	{name: "environment:checkout", aliases: alias("checkout"), summary: "Check out an environment", args: optional("id", "The ID of the environment to check out"), flags: ProjectFlags},
	{name: "environment:curl", summary: "Run an authenticated cURL request on an environment's API", args: optional("path", "The API path"), flags: EnvironmentFlags},
	{name: "environment:delete", summary: "Delete one or more environments", args: rest("environment", "The environment(s) to delete"), flags: envWait},
	{name: "environment:deploy", aliases: alias("deploy"), summary: "Deploy an environment's staged changes", flags: envWait},
	{name: "environment:deploy:type", summary: "Show or set the environment deployment type", args: optional("type", "The environment deployment type: automatic or manual"), flags: envWait},
	{name: "environment:drush", aliases: alias("drush"), summary: "Run a drush command on the remote environment", args: rest("cmd", "A command to pass to Drush"), flags: AppFlags},
	{name: "environment:http-access", aliases: alias("httpaccess"), summary: "Update HTTP access settings for an environment", flags: envWait},
	{name: "environment:list", aliases: alias("environments", "env"), summary: "Get a list of environments", flags: flagSet(projectTable, PipeFlag)},
	{name: "environment:logs", aliases: alias("log"), summary: "Read an environment's logs", args: optional("type", "The log type, e.g. \"access\" or \"error\""), flags: AppFlags},
	{name: "environment:info", summary: "Read or set properties for an environment", args: pair("property", "The name of the property", "value", "Set a new value for the property"), flags: envWait},
	{name: "environment:init", summary: "Initialize an environment from a public Git repository", args: required("url", "A URL to a Git repository"), flags: envWait},
	{name: "environment:merge", aliases: alias("merge"), summary: "Merge an environment", args: optional("environment", "The environment to merge"), flags: envWait},
	{name: "environment:pause", summary: "Pause an environment", flags: envWait},
	{name: "environment:push", aliases: alias("push"), summary: "Push code to an environment", args: optional("source", "The Git source ref, e.g. a branch name or a commit hash"), flags: envWait},
	{name: "environment:redeploy", aliases: alias("redeploy"), summary: "Redeploy an environment", flags: envWait},
	{name: "environment:relationships", aliases: alias("relationships", "rel"), summary: "Show an environment's relationships", args: optional("environment", "The environment"), flags: AppFlags},
	{name: "environment:resume", summary: "Resume a paused environment", flags: envWait},
	{name: "environment:ssh", aliases: alias("ssh"), summary: "SSH to the current environment", args: rest("cmd", "A command to run on the environment"), flags: AppFlags},
	{name: "environment:scp", aliases: alias("scp"), summary: "Copy files to and from current environment using scp", args: rest("files", "Files to copy. Use the remote: prefix to define remote locations."), flags: AppFlags},
	{name: "environment:synchronize", aliases: alias("sync"), summary: "Synchronize an environment's code, data and/or resources from its parent", args: rest("synchronize", "What to synchronize: \"code\", \"data\" and/or \"resources\""), flags: envWait},
	{name: "environment:url", aliases: alias("url"), summary: "Get the public URLs of an environment", args: optional("path", "A path to open"), flags: EnvironmentFlags},
	{name: "environment:set-remote", summary: "Set the remote environment to map to a branch", args: pair("environment", "The environment machine name", "branch", "The Git branch to map"), flags: ProjectFlags},
	{name: "environment:xdebug", aliases: alias("xdebug"), summary: "Open a tunnel to Xdebug on the environment", flags: AppFlags},

	{name: "integration:add", summary: "Add an integration to the project", flags: projectWait},
	{name: "integration:delete", summary: "Delete an integration from a project", args: optional("id", "The integration ID or a prefix"), flags: projectWait},
	{name: "integration:get", summary: "View details of an integration", args: optional("id", "The integration ID or a prefix"), flags: ProjectFlags},
	{name: "integration:list", aliases: alias("integrations"), summary: "View a list of project integration(s)", flags: projectTable},
	{name: "integration:update", summary: "Update an integration", args: optional("id", "The integration ID or a prefix"), flags: projectWait},
	{name: "integration:validate", summary: "Validate an existing integration", args: optional("id", "The integration ID or a prefix"), flags: ProjectFlags},
	{name: "integration:activity:get", summary: "View detailed information on a single integration activity", args: pair("integration", "An integration ID", "activity", "An activity ID"), flags: ProjectFlags},
	{name: "integration:activity:list", aliases: alias("integration:activities"), summary: "Get a list of activities for an integration", args: optional("id", "An integration ID"), flags: projectTable},
	{name: "integration:activity:log", summary: "Display the log for an integration activity", args: pair("integration", "An integration ID", "activity", "An activity ID"), flags: ProjectFlags},

	{name: "local:build", aliases: alias("build"), summary: "Build the current project locally", args: rest("app", "Specify application(s) to build")},
	{name: "local:clean", aliases: alias("clean"), summary: "Remove old project builds"},
	{name: "local:drush-aliases", aliases: alias("drush-aliases"), summary: "Find the project's Drush aliases"},
	{name: "local:dir", aliases: alias("dir"), summary: "Find the local project root", args: optional("subdir", "The subdirectory to find (local, web or shared)")},

	{name: "mount:list", aliases: alias("mounts"), summary: "Get a list of mounts", flags: appTable},
	{name: "mount:download", summary: "Download files from a mount, using rsync", flags: AppFlags},
	{name: "mount:size", summary: "Check the disk usage of mounts", flags: appTable},
	{name: "mount:upload", summary: "Upload files to a mount, using rsync", flags: AppFlags},

	{name: "organization:create", summary: "Create a new organization"},
	{name: "organization:curl", summary: "Run an authenticated cURL request on an organization's API", args: optional("path", "The API path"), flags: OrganizationFlags},
	{name: "organization:delete", summary: "Delete an organization", flags: OrganizationFlags},
	{name: "organization:info", summary: "View or change organization details", args: pair("property", "The name of a property to view or change", "value", "A new value for the property"), flags: OrganizationFlags},
	{name: "organization:list", aliases: alias("orgs", "organizations"), summary: "List organizations", flags: TableFlags},
	{name: "organization:subscription:list", aliases: alias("organization:subscriptions"), summary: "List subscriptions within an organization", flags: orgTable},
	{name: "organization:billing:address", summary: "View or change an organization's billing address", args: rest("property", "Properties to view or change"), flags: OrganizationFlags},
	{name: "organization:billing:profile", summary: "View or change an organization's billing profile", args: pair("property", "The name of a property to view or change", "value", "A new value for the property"), flags: OrganizationFlags},
	{name: "organization:user:add", summary: "Invite a user to an organization", args: optional("email", "The email address of the user"), flags: OrganizationFlags},
	{name: "organization:user:delete", summary: "Remove a user from an organization", args: required("email", "The user's email address"), flags: OrganizationFlags},
	{name: "organization:user:get", summary: "View an organization user", args: optional("email", "The user's email address"), flags: OrganizationFlags},
	{name: "organization:user:list", aliases: alias("organization:users"), summary: "List organization users", flags: orgTable},
	{name: "organization:user:projects", aliases: alias("oups"), summary: "List the projects a user can access", args: optional("email", "The user's email address"), flags: orgTable},
	{name: "organization:user:update", summary: "Update an organization user", args: optional("email", "The user's email address"), flags: OrganizationFlags},

	{name: "metrics:all", aliases: alias("metrics", "met"), summary: "Show CPU, disk and memory metrics for an environment", flags: appTable},
	{name: "metrics:cpu", aliases: alias("cpu"), summary: "Show CPU usage of an environment", flags: appTable},
	{name: "metrics:curl", summary: "Run an authenticated cURL request on an environment's metrics API", args: optional("path", "The metrics API path"), flags: EnvironmentFlags, hidden: true},
	{name: "metrics:disk-usage", aliases: alias("disk"), summary: "Show disk usage of an environment", flags: appTable},
	{name: "metrics:memory", aliases: alias("mem", "memory"), summary: "Show memory usage of an environment", flags: appTable},

	{name: "project:clear-build-cache", summary: "Clear a project's build cache", flags: ProjectFlags},
	{name: "project:curl", summary: "Run an authenticated cURL request on a project's API", args: optional("path", "The API path"), flags: ProjectFlags},
	{name: "project:create", aliases: alias("create"), summary: "Create a new project", flags: OrganizationFlags},
	{name: "project:delete", summary: "Delete a project", args: optional("project", "The project ID"), flags: ProjectFlags},
	{name: "project:get", aliases: alias("get"), summary: "Clone a project locally", args: pair("project", "The project ID", "directory", "The directory to clone to. Defaults to the project title"), flags: EnvironmentFlags},
	{name: "project:list", aliases: alias("projects", "pro"), summary: "Get a list of all active projects", flags: flagSet(OrganizationFlags, TableFlags, PipeFlag)},
	{name: "project:info", summary: "Read or set properties for a project", args: pair("property", "The name of the property", "value", "Set a new value for the property"), flags: projectWait},
	{name: "project:set-remote", summary: "Set the remote project for the current Git repository", args: optional("project", "The project ID")},
	{name: "project:variable:delete", summary: "Delete a variable from a project", args: required("name", "The variable name"), flags: projectWait, hidden: true},
	{name: "project:variable:get", aliases: alias("pvget"), summary: "View variable(s) for a project", args: optional("name", "The name of the variable"), flags: projectTable, hidden: true},
	{name: "project:variable:set", aliases: alias("pvset"), summary: "Set a variable for a project", args: pair("name", "The variable name", "value", "The variable value"), flags: projectWait, hidden: true},

	{name: "repo:cat", summary: "Read a file in the project repository", args: required("path", "The path to the file"), flags: EnvironmentFlags},
	{name: "repo:ls", summary: "List files in the project repository", args: optional("path", "The path to a subdirectory"), flags: EnvironmentFlags},
	{name: "repo:read", aliases: alias("read"), summary: "Read a directory or file in the project repository", args: optional("path", "The path to the directory or file"), flags: EnvironmentFlags},

	{name: "route:list", aliases: alias("routes"), summary: "List all routes for an environment", flags: envTable},
	{name: "route:get", summary: "View detailed information about a route", args: optional("route", "The route's original URL"), flags: EnvironmentFlags},

	{name: "self:build", summary: "Build a new package of the CLI", hidden: true},
	{name: "self:config", summary: "Show CLI configuration", hidden: true},
	{name: "self:install", summary: "Install or update CLI configuration files"},
	{name: "self:update", aliases: alias("self-update"), summary: "Update the CLI to the latest version"},
	{name: "self:release", summary: "Build and release a new version", hidden: true},
	{name: "self:stats", summary: "View stats on GitHub package downloads", hidden: true},

	{name: "server:run", summary: "Run PHP web server(s) for the local project", hidden: true},
	{name: "server:start", summary: "Run PHP web server(s) for the local project", hidden: true},
	{name: "server:list", aliases: alias("servers"), summary: "List running local project web server(s)", hidden: true},
	{name: "server:stop", summary: "Stop local project web server(s)", hidden: true},

	{name: "service:mongo:dump", aliases: alias("mongodump"), summary: "Create a binary archive dump of data from MongoDB", flags: AppFlags},
	{name: "service:mongo:export", aliases: alias("mongoexport"), summary: "Export data from MongoDB", flags: AppFlags},
	{name: "service:mongo:restore", aliases: alias("mongorestore"), summary: "Restore a binary archive dump of data into MongoDB", flags: AppFlags},
	{name: "service:mongo:shell", aliases: alias("mongo"), summary: "Use the MongoDB shell", flags: AppFlags},
	{name: "service:redis-cli", aliases: alias("redis"), summary: "Access the Redis CLI", args: optional("args", "Arguments to add to the Redis command"), flags: AppFlags},
	{name: "service:list", aliases: alias("services"), summary: "List services in the project", flags: envTable},
	{name: "service:valkey-cli", aliases: alias("valkey"), summary: "Access the Valkey CLI", args: optional("args", "Arguments to add to the Valkey command"), flags: AppFlags},

	{name: "session:switch", summary: "Switch between sessions", args: optional("id", "The new session ID"), hidden: true},

	{name: "backup:create", aliases: alias("backup"), summary: "Make a backup of an environment", args: optional("environment", "The environment"), flags: envWait},
	{name: "backup:delete", summary: "Delete an environment backup", args: optional("backup", "The ID of the backup"), flags: envWait},
	{name: "backup:get", summary: "View an environment backup", args: optional("backup", "The ID of the backup"), flags: EnvironmentFlags},
	{name: "backup:list", aliases: alias("backups"), summary: "List available backups of an environment", flags: envTable},
	{name: "backup:restore", summary: "Restore an environment backup", args: optional("backup", "The ID of the backup"), flags: envWait},

	{name: "resources:get", aliases: alias("resources", "res"), summary: "View the resources of apps and services on an environment", flags: appTable},
	{name: "resources:size:list", aliases: alias("resources:sizes"), summary: "List container profile sizes", flags: appTable},
	{name: "resources:set", summary: "Set the resources of apps and services on an environment", flags: envWait},
	{name: "resources:build:get", aliases: alias("build-resources:get"), summary: "View the build resources of a project", flags: projectTable},
	{name: "resources:build:set", aliases: alias("build-resources:set"), summary: "Set the build resources of a project", flags: ProjectFlags},

	{name: "operation:list", aliases: alias("ops"), summary: "List runtime operations on an environment", flags: appTable},
	{name: "operation:run", summary: "Run an operation on the environment", args: optional("operation", "The operation name"), flags: flagSet(AppFlags, WaitFlags)},
	{name: "source-operation:list", aliases: alias("source-ops"), summary: "List source operations on an environment", flags: envTable},
	{name: "source-operation:run", summary: "Run a source operation", args: optional("operation", "The operation name"), flags: envWait},

	{name: "ssh-cert:info", summary: "Display information about the current SSH certificate"},
	{name: "ssh-cert:load", summary: "Generate an SSH certificate"},

	{name: "ssh-key:add", summary: "Add a new SSH key", args: optional("path", "The path to an existing SSH public key")},
	{name: "ssh-key:delete", summary: "Delete an SSH key", args: optional("id", "The ID of the SSH key to delete")},
	{name: "ssh-key:list", aliases: alias("ssh-keys"), summary: "Get a list of SSH keys in your account", flags: TableFlags},

	{name: "subscription:info", summary: "Read or modify subscription properties", args: pair("property", "The name of the property", "value", "Set a new value for the property"), flags: ProjectFlags},

	{name: "team:create", summary: "Create a new team", flags: OrganizationFlags},
	{name: "team:delete", summary: "Delete a team", flags: OrganizationFlags},
	{name: "team:get", summary: "View a team", flags: OrganizationFlags},
	{name: "team:list", aliases: alias("teams"), summary: "List teams", flags: orgTable},
	{name: "team:update", summary: "Update a team", flags: OrganizationFlags},
	{name: "team:project:add", summary: "Add project(s) to a team", args: rest("projects", "The project ID(s)"), flags: OrganizationFlags},
	{name: "team:project:delete", summary: "Remove a project from a team", args: optional("project", "The project ID"), flags: OrganizationFlags},
	{name: "team:project:list", aliases: alias("team:projects", "team:pro"), summary: "List projects in a team", flags: orgTable},
	{name: "team:user:add", summary: "Add a user to a team", args: optional("user", "The user email address or ID"), flags: OrganizationFlags},
	{name: "team:user:delete", summary: "Remove a user from a team", args: optional("user", "The user email address or ID"), flags: OrganizationFlags},
	{name: "team:user:list", aliases: alias("team:users"), summary: "List users in a team", flags: orgTable},

	{name: "tunnel:close", summary: "Close SSH tunnels", flags: AppFlags},
	{name: "tunnel:info", summary: "View relationship info for SSH tunnels", flags: AppFlags},
	{name: "tunnel:list", aliases: alias("tunnels"), summary: "List SSH tunnels", flags: appTable},
	{name: "tunnel:open", summary: "Open SSH tunnels to an app's relationships", flags: AppFlags},
	{name: "tunnel:single", summary: "Open a single SSH tunnel to an app relationship", flags: AppFlags},

	{name: "user:add", summary: "Add a user to the project", args: optional("email", "The user's email address"), flags: projectWait},
	{name: "user:delete", summary: "Delete a user from the project", args: required("email", "The user's email address"), flags: projectWait},
	{name: "user:list", aliases: alias("users"), summary: "List project users", flags: projectTable},
	{name: "user:get", summary: "View a user's role(s)", args: optional("email", "The user's email address"), flags: ProjectFlags},
	{name: "user:update", summary: "Update user role(s) on a project", args: optional("email", "The user's email address"), flags: projectWait},

	{name: "variable:create", summary: "Create a variable", args: optional("name", "The variable name"), flags: envWait},
	{name: "variable:delete", summary: "Delete a variable", args: required("name", "The variable name"), flags: envWait},
	{name: "variable:disable", summary: "Disable an enabled environment-level variable", args: required("name", "The name of the variable"), flags: envWait},
	{name: "variable:enable", summary: "Enable a disabled environment-level variable", args: required("name", "The name of the variable"), flags: envWait},
	{name: "variable:get", aliases: alias("vget"), summary: "View a variable", args: optional("name", "The name of the variable"), flags: EnvironmentFlags},
	{name: "variable:list", aliases: alias("variables", "var"), summary: "List variables", flags: envTable},
	{name: "variable:set", aliases: alias("vset"), summary: "Set a variable for an environment", args: pair("name", "The variable name", "value", "The variable value"), flags: envWait, hidden: true},
	{name: "variable:update", summary: "Update a variable", args: required("name", "The variable name"), flags: envWait},

	{name: "version:list", aliases: alias("versions"), summary: "List environment versions", flags: envTable},
}

var apiTail = []apiCommand{
	{name: "console", aliases: alias("web"), summary: "Open the project in the Console", flags: EnvironmentFlags},
	{name: "winky", summary: "Wink", hidden: true},
	{name: "worker:list", aliases: alias("workers"), summary: "Get a list of all deployed workers", flags: envTable},
}

// flagArgs builds a required argument followed by an optional one.
func pair(first, firstDesc, second, secondDesc string) []dispatchers.ArgSpec {
	return []dispatchers.ArgSpec{
		{Name: first, Description: firstDesc},
		{Name: second, Description: secondDesc},
	}
}
