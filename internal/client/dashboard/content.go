package dashboard

var student = Dashboard{
	Stats: []Stat{
		{"Study Hours", "24", TrendUp, "+12%"},
		{"Courses", "5", TrendUp, "+2"},
		{"Assignments", "8", TrendNeutral, "2 due"},
		{"Progress", "78%", TrendUp, "+5%"},
	},
	Actions: []Action{
		{"Join Study Session", "Connect with peers and mentors", "Study Sessions"},
		{"My Courses", "View and manage your enrolled courses", "My Courses"},
		{"Assignments", "Check pending assignments and submit work", "Assignments"},
		{"Study Materials", "Access notes, videos, and resources", "Study Materials"},
	},
	Activity: []Activity{
		{"Completed Assignment", "Mathematics - Chapter 5 Quiz", "2 hours ago"},
		{"Enrolled in Course", "Advanced Physics", "1 day ago"},
		{"Joined Study Group", "Chemistry Study Session", "2 days ago"},
	},
}

var mentor = Dashboard{
	Stats: []Stat{
		{"Students", "32", TrendUp, "+5"},
		{"Sessions", "18", TrendUp, "+3"},
		{"Reviews", "4.8", TrendUp, "+0.2"},
		{"Hours", "45", TrendUp, "+8h"},
	},
	Actions: []Action{
		{"Schedule Session", "Create a new mentoring session", "Schedule Session"},
		{"My Students", "View and manage your mentees", "My Students"},
		{"Feedback", "Review student submissions", "Feedback"},
		{"Resources", "Upload study materials for students", "Resources"},
	},
	Activity: []Activity{
		{"Provided Feedback", "Reviewed 5 student submissions", "1 hour ago"},
		{"Session Completed", "Biology Study Group", "3 hours ago"},
		{"Received Review", "5-star rating from student", "1 day ago"},
	},
}

var admin = Dashboard{
	Stats: []Stat{
		{"Total Users", "245", TrendUp, "+15"},
		{"Active Courses", "24", TrendNeutral, "Stable"},
		{"Sessions", "156", TrendUp, "+12"},
		{"Revenue", "$12k", TrendUp, "+8%"},
	},
	Actions: []Action{
		{"User Management", "Manage students, mentors, and admins", "User Management"},
		{"Course Catalog", "Create and manage courses", "Course Catalog"},
		{"Analytics", "View platform statistics and reports", "Analytics"},
		{"Settings", "Configure platform settings", "Settings"},
	},
	Activity: []Activity{
		{"New User Registered", "3 new students joined today", "30 mins ago"},
		{"Course Updated", "Advanced Mathematics syllabus", "2 hours ago"},
		{"Platform Growth", "+15% user engagement this week", "1 day ago"},
	},
}

var fallback = Dashboard{
	Stats: []Stat{
		{"Activity", "0", TrendNeutral, "-"},
		{"Tasks", "0", TrendNeutral, "-"},
		{"Progress", "0%", TrendNeutral, "-"},
		{"Points", "0", TrendNeutral, "-"},
	},
}
