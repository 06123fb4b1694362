package version

var (
	Version     = "dev"
	GitCommit   = ""
	FullVersion = func() string {
		if GitCommit == "" {
			return Version
		}
		return Version + " (" + GitCommit + ")"
	}()
)
