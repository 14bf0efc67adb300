package customer

// seed is the fixed demo dataset of ten synthetic customers.
var seed = []Record{
	{ID: "CUST001", Name: "Asha Verma", Age: 32, City: "Pune", Phone: "9810000001", Email: "asha@example.com", PreApprovedLimit: 300000, SalaryMonthly: 60000, CreditScore: 745},
	{ID: "CUST002", Name: "Rahul Sharma", Age: 29, City: "Delhi", Phone: "9810000002", Email: "rahul@example.com", PreApprovedLimit: 200000, SalaryMonthly: 45000, CreditScore: 712},
	{ID: "CUST003", Name: "Sneha Iyer", Age: 35, City: "Bengaluru", Phone: "9810000003", Email: "sneha@example.com", PreApprovedLimit: 400000, SalaryMonthly: 85000, CreditScore: 780},
	{ID: "CUST004", Name: "Vikram Singh", Age: 40, City: "Lucknow", Phone: "9810000004", Email: "vikram@example.com", PreApprovedLimit: 150000, SalaryMonthly: 30000, CreditScore: 690},
	{ID: "CUST005", Name: "Nisha Patel", Age: 27, City: "Ahmedabad", Phone: "9810000005", Email: "nisha@example.com", PreApprovedLimit: 250000, SalaryMonthly: 52000, CreditScore: 710},
	{ID: "CUST006", Name: "Arjun Rao", Age: 31, City: "Hyderabad", Phone: "9810000006", Email: "arjun@example.com", PreApprovedLimit: 350000, SalaryMonthly: 70000, CreditScore: 760},
	{ID: "CUST007", Name: "Meera Desai", Age: 30, City: "Surat", Phone: "9810000007", Email: "meera@example.com", PreApprovedLimit: 180000, SalaryMonthly: 40000, CreditScore: 695},
	{ID: "CUST008", Name: "Karan Mehta", Age: 33, City: "Mumbai", Phone: "9810000008", Email: "karan@example.com", PreApprovedLimit: 320000, SalaryMonthly: 65000, CreditScore: 735},
	{ID: "CUST009", Name: "Priya Nair", Age: 28, City: "Kochi", Phone: "9810000009", Email: "priya@example.com", PreApprovedLimit: 280000, SalaryMonthly: 48000, CreditScore: 725},
	{ID: "CUST010", Name: "Sourav Ghosh", Age: 36, City: "Kolkata", Phone: "9810000010", Email: "sourav@example.com", PreApprovedLimit: 500000, SalaryMonthly: 90000, CreditScore: 790},
}
