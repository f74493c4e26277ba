package command

import "strings"

// Usage strings, shown with format errors and by the help command.
const (
	UsageAddClient = "client -a: Adds a client to the address book and links it to a project. " +
		"Parameters: n/NAME pid/PROJECT_ID [p/PHONE] [e/EMAIL]\n" +
		"Example: client -a n/John Doe p/98765432 e/johnd@example.com pid/1"
	UsageEditClient = "client -e: Edits a client in the address book. " +
		"Parameters: cid/CLIENT_ID [n/NAME] [p/PHONE] [e/EMAIL]\n" +
		"Example: client -e cid/1 n/John e/john@gmail.com p/12345678"
	UsageDeleteClient = "client -d: Deletes a client from the address book. " +
		"Parameters: CLIENT_ID\n" +
		"Example: client -d 1"
	UsageListClients = "client -l: Lists all clients.\nExample: client -l"
	UsageFindClients = "client -f: Finds clients whose fields contain any of the given keywords. " +
		"Parameters: [n/NAME]... [e/EMAIL]... [p/PHONE]...\n" +
		"Example: client -f n/John n/Amy"

	UsageAddProject = "project -a: Adds a project to the address book. " +
		"Parameters: n/NAME [r/REPOSITORY] [d/DEADLINE] [cid/CLIENT_ID]\n" +
		"Example: project -a n/Website r/octo/website d/2022-12-10 cid/1"
	UsageEditProject = "project -e: Edits a project in the address book. " +
		"Parameters: pid/PROJECT_ID [n/NAME] [r/REPOSITORY] [d/DEADLINE] [cid/CLIENT_ID]\n" +
		"Example: project -e pid/1 n/Homepage d/2023-01-31"
	UsageDeleteProject = "project -d: Deletes a project and its issues from the address book. " +
		"Parameters: PROJECT_ID\n" +
		"Example: project -d 1"
	UsageListProjects = "project -l: Lists all projects.\nExample: project -l"
	UsageFindProjects = "project -f: Finds projects whose fields contain any of the given keywords. " +
		"Parameters: [n/NAME]... [r/REPOSITORY]...\n" +
		"Example: project -f n/Website"

	UsageAddIssue = "issue -a: Adds an issue to a project. " +
		"Parameters: pid/PROJECT_ID t/TITLE [d/DEADLINE] [pr/PRIORITY(0, 1, 2)]\n" +
		"Example: issue -a pid/1 t/Create a person class d/2022-12-10 pr/0"
	UsageEditIssue = "issue -e: Edits an issue in the address book. " +
		"Parameters: iid/ISSUE_ID [t/TITLE] [d/DEADLINE] [pr/PRIORITY] [s/STATUS] [pid/PROJECT_ID]\n" +
		"Example: issue -e iid/1 t/Fix login pr/2"
	UsageDeleteIssue = "issue -d: Deletes an issue from the address book. " +
		"Parameters: ISSUE_ID\n" +
		"Example: issue -d 1"
	UsageMarkIssue   = "issue -m: Marks an issue as completed. Parameters: ISSUE_ID\nExample: issue -m 1"
	UsageUnmarkIssue = "issue -u: Marks an issue as incomplete. Parameters: ISSUE_ID\nExample: issue -u 1"
	UsageListIssues  = "issue -l: Lists all issues.\nExample: issue -l"
	UsageFindIssues  = "issue -f: Finds issues matching all of the given fields. " +
		"Parameters: [t/TITLE]... [pr/PRIORITY]... [s/STATUS]... [pid/PROJECT_ID]...\n" +
		"Example: issue -f t/login pr/2"

	UsageClear = "clear: Clears the address book."
	UsageHelp  = "help: Shows the command overview."
	UsageExit  = "exit: Exits the program."
)

// HelpMessage is the overview shown by the help command.
var HelpMessage = strings.Join([]string{
	UsageAddClient, UsageEditClient, UsageDeleteClient, UsageListClients, UsageFindClients,
	UsageAddProject, UsageEditProject, UsageDeleteProject, UsageListProjects, UsageFindProjects,
	UsageAddIssue, UsageEditIssue, UsageDeleteIssue, UsageMarkIssue, UsageUnmarkIssue,
	UsageListIssues, UsageFindIssues,
	UsageClear, UsageHelp, UsageExit,
}, "\n\n")
