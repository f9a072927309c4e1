package repository

import (
	"time"

	"learnhub-backend/internal/models"
)

// Seed data for the demo deployment. Progress values are spread so every
// leaderboard badge tier and every dropout-risk bucket shows up.

func seedTime(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 9, 0, 0, 0, time.UTC)
}

func SeedUsers() []models.User {
	return []models.User{
		{
			ID: "u01", FullName: "Aisha Khan", Email: "aisha.khan@learnhub.io",
			Phone: "+1-555-0101", Role: models.RoleStudent,
			EnrolledCourseIDs: []string{"c01", "c03", "c05"}, ProgressPercentage: 92,
			CreatedAt: seedTime(time.January, 12),
		},
		{
			ID: "u02", FullName: "Marcus Reed", Email: "marcus.reed@learnhub.io",
			Phone: "+1-555-0102", Role: models.RoleStudent,
			EnrolledCourseIDs: []string{"c02", "c04"}, ProgressPercentage: 88,
			CreatedAt: seedTime(time.January, 28),
		},
		{
			ID: "u03", FullName: "Priya Sharma", Email: "priya.sharma@learnhub.io",
			Phone: "+1-555-0103", Role: models.RoleStudent,
			EnrolledCourseIDs: []string{"c01", "c02", "c06"}, ProgressPercentage: 81,
			CreatedAt: seedTime(time.February, 3),
		},
		{
			ID: "u04", FullName: "Diego Alvarez", Email: "diego.alvarez@learnhub.io",
			Phone: "+1-555-0104", Role: models.RoleStudent,
			EnrolledCourseIDs: []string{"c03"}, ProgressPercentage: 74,
			CreatedAt: seedTime(time.February, 17),
		},
		{
			ID: "u05", FullName: "Lena Fischer", Email: "lena.fischer@learnhub.io",
			Phone: "+1-555-0105", Role: models.RoleStudent,
			EnrolledCourseIDs: []string{"c05", "c07"}, ProgressPercentage: 66,
			CreatedAt: seedTime(time.March, 5),
		},
		{
			ID: "u06", FullName: "Tomasz Nowak", Email: "tomasz.nowak@learnhub.io",
			Phone: "+1-555-0106", Role: models.RoleStudent,
			EnrolledCourseIDs: []string{"c04"}, ProgressPercentage: 58,
			CreatedAt: seedTime(time.March, 21),
		},
		{
			ID: "u07", FullName: "Grace Osei", Email: "grace.osei@learnhub.io",
			Phone: "+1-555-0107", Role: models.RoleStudent,
			EnrolledCourseIDs: []string{"c06"}, ProgressPercentage: 41,
			CreatedAt: seedTime(time.April, 9),
		},
		{
			ID: "u08", FullName: "Hiro Tanaka", Email: "hiro.tanaka@learnhub.io",
			Phone: "+1-555-0108", Role: models.RoleStudent,
			EnrolledCourseIDs: []string{"c08"}, ProgressPercentage: 27,
			CreatedAt: seedTime(time.April, 25),
		},
		{
			ID: "u09", FullName: "Sara Lindqvist", Email: "sara.lindqvist@learnhub.io",
			Phone: "+1-555-0109", Role: models.RoleStudent,
			EnrolledCourseIDs: nil, ProgressPercentage: 12,
			CreatedAt: seedTime(time.May, 8),
		},
		{
			ID: "u10", FullName: "Omar Haddad", Email: "omar.haddad@learnhub.io",
			Phone: "+1-555-0110", Role: models.RoleStudent,
			EnrolledCourseIDs: []string{"c01"}, ProgressPercentage: 58,
			CreatedAt: seedTime(time.May, 19),
		},
		{
			ID: "u11", FullName: "Dr. Elena Petrova", Email: "elena.petrova@learnhub.io",
			Phone: "+1-555-0111", Role: models.RoleInstructor,
			EnrolledCourseIDs: nil, ProgressPercentage: 0,
			CreatedAt: seedTime(time.January, 2),
		},
		{
			ID: "u12", FullName: "Admin User", Email: "admin@learnhub.io",
			Phone: "+1-555-0112", Role: models.RoleAdmin,
			EnrolledCourseIDs: nil, ProgressPercentage: 0,
			CreatedAt: seedTime(time.January, 2),
		},
	}
}

func SeedCourses() []models.Course {
	return []models.Course{
		{
			ID: "c01", Title: "Python for Everyone",
			Description: "From first print statement to working scripts, with weekly exercises.",
			Instructor:  "Dr. Elena Petrova", Duration: "8 weeks", Category: "Programming",
			Level: models.LevelBeginner, Rating: 4.7, LessonCount: 32, EnrolledCount: 1240,
			Thumbnail: "/thumbs/python-for-everyone.jpg",
		},
		{
			ID: "c02", Title: "Advanced Go Services",
			Description: "Production service patterns: HTTP APIs, testing, and deployment.",
			Instructor:  "Marcus Chen", Duration: "10 weeks", Category: "Programming",
			Level: models.LevelAdvanced, Rating: 4.8, LessonCount: 40, EnrolledCount: 860,
			Thumbnail: "/thumbs/advanced-go-services.jpg",
		},
		{
			ID: "c03", Title: "Data Analysis with Pandas",
			Description: "Clean, transform, and visualize real datasets end to end.",
			Instructor:  "Dr. Elena Petrova", Duration: "6 weeks", Category: "Data Science",
			Level: models.LevelIntermediate, Rating: 4.6, LessonCount: 24, EnrolledCount: 1510,
			Thumbnail: "/thumbs/data-analysis-pandas.jpg",
		},
		{
			ID: "c04", Title: "Statistics Foundations",
			Description: "Probability, distributions, and inference for practitioners.",
			Instructor:  "James Okafor", Duration: "8 weeks", Category: "Data Science",
			Level: models.LevelBeginner, Rating: 4.4, LessonCount: 28, EnrolledCount: 980,
			Thumbnail: "/thumbs/statistics-foundations.jpg",
		},
		{
			ID: "c05", Title: "Machine Learning Fundamentals",
			Description: "Supervised learning from linear regression to tree ensembles.",
			Instructor:  "Dr. Sofia Marino", Duration: "12 weeks", Category: "AI & ML",
			Level: models.LevelIntermediate, Rating: 4.9, LessonCount: 48, EnrolledCount: 2100,
			Thumbnail: "/thumbs/ml-fundamentals.jpg",
		},
		{
			ID: "c06", Title: "Deep Learning with TensorFlow",
			Description: "Neural networks, CNNs, and training at scale.",
			Instructor:  "Dr. Sofia Marino", Duration: "12 weeks", Category: "AI & ML",
			Level: models.LevelAdvanced, Rating: 4.8, LessonCount: 44, EnrolledCount: 1320,
			Thumbnail: "/thumbs/deep-learning-tf.jpg",
		},
		{
			ID: "c07", Title: "UI Design Essentials",
			Description: "Layout, typography, and color for product interfaces.",
			Instructor:  "Mia Johansson", Duration: "5 weeks", Category: "Design",
			Level: models.LevelBeginner, Rating: 4.5, LessonCount: 20, EnrolledCount: 720,
			Thumbnail: "/thumbs/ui-design-essentials.jpg",
		},
		{
			ID: "c08", Title: "Design Systems in Practice",
			Description: "Build and maintain a component library a team can trust.",
			Instructor:  "Mia Johansson", Duration: "7 weeks", Category: "Design",
			Level: models.LevelIntermediate, Rating: 4.3, LessonCount: 26, EnrolledCount: 430,
			Thumbnail: "/thumbs/design-systems-practice.jpg",
		},
	}
}
