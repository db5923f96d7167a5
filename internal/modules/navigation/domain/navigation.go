package domain

type Tree string

const (
	AuthTree Tree = "auth"
	MainTree Tree = "main"
)

// Select maps session presence to the screen tree to show.
func Select(sessionPresent bool) Tree {
	if sessionPresent {
		return MainTree
	}
	return AuthTree
}

type Screen string

const (
	ScreenWelcome   Screen = "Welcome"
	ScreenLogin     Screen = "Login"
	ScreenRegister  Screen = "Register"
	ScreenHome      Screen = "Home"
	ScreenJobs      Screen = "Jobs"
	ScreenJobDetail Screen = "JobDetail"
	ScreenCreateJob Screen = "CreateJob"
	ScreenProfile   Screen = "Profile"
)

// Route lists the screens reachable in a tree. Tabs are the top-level entries
// of the main tree; the auth tree is a plain stack.
type Route struct {
	Tree    Tree
	Initial Screen
	Tabs    []Screen
	Screens []Screen
}

var routes = map[Tree]Route{
	AuthTree: {
		Tree:    AuthTree,
		Initial: ScreenWelcome,
		Screens: []Screen{ScreenWelcome, ScreenLogin, ScreenRegister},
	},
	MainTree: {
		Tree:    MainTree,
		Initial: ScreenHome,
		Tabs:    []Screen{ScreenHome, ScreenJobs, ScreenProfile},
		Screens: []Screen{ScreenHome, ScreenJobs, ScreenJobDetail, ScreenCreateJob, ScreenProfile},
	},
}

func RouteFor(tree Tree) Route {
	return routes[tree]
}

// Contains reports whether screen belongs to tree.
func (r Route) Contains(screen Screen) bool {
	for _, s := range r.Screens {
		if s == screen {
			return true
		}
	}
	return false
}

type HomeVariant string

const (
	HomeAvailableJobs HomeVariant = "available-jobs"
	HomePostJob       HomeVariant = "post-job"
)

// HomeFor picks the home screen content: workers browse jobs, clients post.
func HomeFor(userType string) HomeVariant {
	if userType == "worker" {
		return HomeAvailableJobs
	}
	return HomePostJob
}
