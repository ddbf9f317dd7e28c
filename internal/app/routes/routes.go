package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/selin/acadcore/internal/app/controllers"
	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	semesterController *controllers.SemesterController,
	courseController *controllers.CourseController,
	loadController *controllers.LoadController,
	offeringController *controllers.OfferingController,
	enrollmentController *controllers.EnrollmentController,
	gradeController *controllers.GradeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Semester routes: readable by everyone, created by admins
		semesters := authenticated.Group("/semesters")
		{
			semesters.GET("", semesterController.ListSemesters)
			semesters.GET("/:id", semesterController.GetSemester)

			semestersAdminProtected := semesters.Group("")
			semestersAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				semestersAdminProtected.POST("", semesterController.CreateSemester)
			}
		}

		// Course routes: readable by everyone, created by admins
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.GET("/:id", courseController.GetCourse)

			coursesAdminProtected := courses.Group("")
			coursesAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				coursesAdminProtected.POST("", courseController.CreateCourse)
			}
		}

		// Load routes: admin only
		loads := authenticated.Group("/loads")
		loads.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			loads.POST("/teachers", loadController.AssignTeacherLoad)
			loads.POST("/students", loadController.AssignStudentLoad)
		}

		// Offering routes: created by admins, listed by teachers and admins
		offerings := authenticated.Group("/offerings")
		{
			offeringsAdminProtected := offerings.Group("")
			offeringsAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				offeringsAdminProtected.POST("", offeringController.CreateOffering)
			}

			offeringsTeacherProtected := offerings.Group("")
			offeringsTeacherProtected.Use(authMiddleware.RoleRequired(models.RoleTeacher, models.RoleAdmin))
			{
				offeringsTeacherProtected.GET("/teacher-courses", offeringController.GetTeacherCourses)
			}
		}

		// Enrollment routes: students act for themselves, admins for anyone
		enrollments := authenticated.Group("/enrollments")
		enrollments.Use(authMiddleware.RoleRequired(models.RoleStudent, models.RoleAdmin))
		{
			enrollments.POST("", enrollmentController.Enroll)
			enrollments.GET("", enrollmentController.ListEnrollments)
		}

		// Grade routes: teachers act for themselves, admins for anyone
		grades := authenticated.Group("/grades")
		grades.Use(authMiddleware.RoleRequired(models.RoleTeacher, models.RoleAdmin))
		{
			grades.POST("", gradeController.AssignGrade)
		}
	}
}
