package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ProfileInfo is the short GitHub profile summary supplied by the data
// retrieval layer. DiskUsageKB below zero means the value was unavailable
// (token lacks the user scope).
type ProfileInfo struct {
	DiskUsageKB       int64
	ContributionCount int64
	ContributionYear  int
	Hireable          bool
	PublicRepos       int
	PrivateRepos      int
	HasContributions  bool
}

const bytesPerKB = 1024

// ShortInfo renders the quoted "My GitHub Data" block: storage used,
// contributions this year, hireability and repository counts.
func ShortInfo(info ProfileInfo, opts Options) string {
	tr := opts.Translator

	var block strings.Builder

	block.WriteString(fmt.Sprintf("**🐱 %s** \n\n", tr.T("My GitHub Data")))

	usage := "?"
	if info.DiskUsageKB >= 0 {
		usage = humanize.Bytes(uint64(info.DiskUsageKB) * bytesPerKB)
	}

	block.WriteString(fmt.Sprintf("> 📦 %s \n > \n", tr.Tf("Used in GitHub's Storage", usage)))

	if info.HasContributions {
		contributions := tr.Tf("Contributions in the year",
			humanize.Comma(info.ContributionCount), info.ContributionYear)
		block.WriteString(fmt.Sprintf("> 🏆 %s\n > \n", contributions))
	}

	if info.Hireable {
		block.WriteString(fmt.Sprintf("> 💼 %s\n > \n", tr.T("Opted to Hire")))
	} else {
		block.WriteString(fmt.Sprintf("> 🚫 %s\n > \n", tr.T("Not Opted to Hire")))
	}

	publicKey := "public repositories"
	if info.PublicRepos == 1 {
		publicKey = "public repository"
	}

	block.WriteString(fmt.Sprintf("> 📜 %s \n > \n", tr.Tf(publicKey, info.PublicRepos)))

	privateKey := "private repositories"
	if info.PublicRepos == 1 {
		privateKey = "private repository"
	}

	block.WriteString(fmt.Sprintf("> 🔑 %s \n > \n", tr.Tf(privateKey, info.PrivateRepos)))

	return block.String()
}

// UpdatedOn renders the trailing last-updated footer using the configured
// date layout.
func UpdatedOn(now time.Time, layout string) string {
	return fmt.Sprintf("\n Last Updated on %s UTC", now.UTC().Format(layout))
}
