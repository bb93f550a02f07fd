package seed

var firstNames = []string{
	"Aarav", "Aayush", "Anjali", "Bibek", "Bishal", "Deepa", "Gita", "Hari",
	"Kabita", "Kiran", "Manish", "Nisha", "Prakash", "Pooja", "Rajesh", "Sabina",
	"Sandeep", "Sita", "Sujan", "Sunita",
}

var lastNames = []string{
	"Adhikari", "Bhandari", "Gurung", "Karki", "Khadka", "Lama", "Magar", "Maharjan",
	"Poudel", "Rai", "Shrestha", "Tamang", "Thapa",
}

var positions = []string{"Principal", "Director", "Admissions Officer", "Chairperson", "Administrator"}

var grades = []string{"Nursery", "Grade 1", "Grade 5", "Grade 8", "Grade 11 Science", "Bachelor", "IELTS"}

var cities = []string{"Kathmandu", "Lalitpur", "Bhaktapur", "Pokhara", "Chitwan", "Biratnagar", "Butwal"}

var newInstitutionNames = []string{
	"Himalayan Pathway School",
	"Everest Vision Academy",
	"Bagmati Learning Center",
	"Phewa Valley College",
	"Annapurna Skills Institute",
}

var reviewComments = []string{
	"Teachers are supportive and the classes are well managed.",
	"Good facilities but the fees went up this year.",
	"My child enjoys the sports and music programs.",
	"Transport is reliable and the staff communicate regularly.",
	"Strong academics. Counselling could be better.",
	"Clean campus and a safe environment.",
	"",
}
