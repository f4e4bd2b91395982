// Package aifunc holds the prompt templates the agent hands to the LLM.
//
// A Function maps the runtime input to the text describing what the model
// should compute. The templates below return a fixed description and ignore
// their input; the input is embedded in the final prompt separately.
package aifunc

// Function is a pure text-to-text prompt template.
type Function func(input string) string

// ProjectScope is the decoded answer to PrintProjectScope.
type ProjectScope struct {
	IsCRUDRequired         bool `json:"is_crud_required"`
	IsUserLoginAndLogout   bool `json:"is_user_login_and_logout"`
	IsExternalURLsRequired bool `json:"is_external_urls_required"`
}

// ConvertUserInputToGoal condenses a free-form request into a one-line goal.
func ConvertUserInputToGoal(_ string) string {
	return `Input: Takes in a user request.
Function: Converts user request into a short summarized goal.
Printing: Prints out a summary of what the user wants to build.
Important: Only print the goal, without any label or quotation.
Example:
  user_request = "I need a website that lets users login and logout. It needs to look fancy and accept payments."
  prints: build a website that handles users logging in and logging out and accepts payments`
}

// PrintProjectScope classifies a goal into the ProjectScope flags.
func PrintProjectScope(_ string) string {
	return `Input: Takes in a user request describing a website project.
Function: Decides whether the project needs CRUD, user login and logout, and calls to external URLs.
Printing: Prints a JSON object with the boolean fields "is_crud_required", "is_user_login_and_logout"
and "is_external_urls_required".
Important: Print only the JSON object. No markdown, no code fences.
Example:
  project_description = "build a website that fetches and tracks fitness progress with timezone information"
  prints: {"is_crud_required": true, "is_user_login_and_logout": true, "is_external_urls_required": true}`
}

// PrintBackendWebserverCode rewrites a code template into a webserver satisfying the goal.
func PrintBackendWebserverCode(_ string) string {
	return `Input: Takes in a PROJECT_DESCRIPTION and a CODE_TEMPLATE for a webserver.
Function: Takes the existing CODE_TEMPLATE and rewrites it so that the webserver implements the
PROJECT_DESCRIPTION, keeping the same framework and structure.
Printing: Prints the complete source file of the new webserver.
Important: Print only the code. No markdown, no commentary, no code fences.`
}

// PrintRESTAPIEndpoints extracts the REST endpoints a webserver exposes.
func PrintRESTAPIEndpoints(_ string) string {
	return `Input: Takes in the source code of a webserver.
Function: Prints out the JSON schema of the REST API endpoints the code exposes.
Printing: Prints a JSON array of objects with the fields "is_route_dynamic" (string "true" or "false"),
"method" (string), "request_body" (any), "response" (any) and "route" (string).
Important: Print only the JSON array. No markdown, no commentary.
Example:
  prints: [{"is_route_dynamic": "false", "method": "get", "request_body": "None", "response": "None", "route": "/item"}]`
}
