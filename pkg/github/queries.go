package github

// GraphQL queries used by the data retrieval layer. Pagination is capped at
// the API maximum page size; profile reports only need recent history.
const (
	queryOwnedRepositories = `
query($username: String!) {
  user(login: $username) {
    repositories(first: 100, orderBy: {field: CREATED_AT, direction: DESC}, ownerAffiliations: OWNER) {
      nodes {
        name
        isFork
        owner { login }
        primaryLanguage { name }
      }
    }
  }
}`

	queryContributedRepositories = `
query($username: String!) {
  user(login: $username) {
    repositoriesContributedTo(first: 100, includeUserRepositories: true, contributionTypes: [COMMIT]) {
      nodes {
        name
        isFork
        owner { login }
        primaryLanguage { name }
      }
    }
  }
}`

	queryCommitDates = `
query($owner: String!, $name: String!, $id: ID!) {
  repository(owner: $owner, name: $name) {
    defaultBranchRef {
      target {
        ... on Commit {
          history(first: 100, author: {id: $id}) {
            nodes {
              committedDate
              additions
              deletions
            }
          }
        }
      }
    }
  }
}`

	queryContributions = `
query($username: String!) {
  user(login: $username) {
    contributionsCollection {
      contributionCalendar { totalContributions }
    }
  }
}`
)
