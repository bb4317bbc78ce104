package main

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"assistant-booking/booking"
	"assistant-booking/controllers"
	"assistant-booking/driver"
	"assistant-booking/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("Файл .env не найден, используем переменные окружения")
	}

	db := driver.ConnectDB()
	defer db.Close()
	driver.Migrate(db)

	s := store.New(db)
	engine := booking.NewEngine(db)

	auth := controllers.AuthController{}
	users := controllers.UserController{}
	students := controllers.StudentController{}
	bookings := controllers.BookingController{}
	loginLimiter := controllers.NewLoginLimiter()

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/register", auth.Register(s)).Methods("POST")
	api.HandleFunc("/login", loginLimiter.Middleware(auth.Login(s))).Methods("POST")
	api.HandleFunc("/validate-session", auth.ValidateSession()).Methods("GET")

	api.HandleFunc("/users/{userId}", auth.TokenVerifyMiddleware(users.GetUser(s))).Methods("GET")
	api.HandleFunc("/users/{userId}", auth.TokenVerifyMiddleware(users.UpdateUser(s))).Methods("PUT")

	api.HandleFunc("/students", auth.TokenVerifyMiddleware(students.Search(s))).Methods("GET")
	api.HandleFunc("/faculties", auth.TokenVerifyMiddleware(students.Faculties(s))).Methods("GET")
	api.HandleFunc("/programs", auth.TokenVerifyMiddleware(students.Programs(s))).Methods("GET")

	api.HandleFunc("/students/{studentId}/questionnaire", auth.TokenVerifyMiddleware(students.QuestionnaireStatus(s))).Methods("GET")
	api.HandleFunc("/students/{studentId}/questionnaire", auth.TokenVerifyMiddleware(students.SubmitQuestionnaire(s))).Methods("POST")
	api.HandleFunc("/students/{studentId}/profile", auth.TokenVerifyMiddleware(students.GetProfile(s))).Methods("GET")
	api.HandleFunc("/students/{studentId}/profile", auth.TokenVerifyMiddleware(students.UpdateProfile(s))).Methods("PUT")
	api.HandleFunc("/students/{studentId}/availability", auth.TokenVerifyMiddleware(students.Availability(engine))).Methods("GET")
	api.HandleFunc("/students/{studentId}/disciplines", auth.TokenVerifyMiddleware(bookings.StudentDisciplines(s))).Methods("GET")

	api.HandleFunc("/teachers/{teacherId}/students", auth.TokenVerifyMiddleware(bookings.TeacherStudents(s))).Methods("GET")
	api.HandleFunc("/bookings", auth.TokenVerifyMiddleware(bookings.Create(s, engine))).Methods("POST")
	api.HandleFunc("/bookings/{bookingId}", auth.TokenVerifyMiddleware(bookings.Delete(engine))).Methods("DELETE")

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:5173"
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{corsOrigin}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "2345"
	}
	logrus.WithField("port", port).Info("Сервер запущен")
	logrus.Fatal(http.ListenAndServe(":"+port, cors(router)))
}
